package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voxdigify/crm-api/internal/core/ports"
)

// SocialHandler proxies the per-page Facebook Graph reads and the derived
// analytics, plus the Instagram insights snapshot.
type SocialHandler struct {
	socialService ports.SocialService
}

func NewSocialHandler(socialService ports.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// Posts handles GET /api/pages/:page/posts.
//
// @Summary      List page posts
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        page  path  string  true  "Configured page slug"
// @Success      200  {array}   domain.PagePost
// @Failure      404  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Router       /api/pages/{page}/posts [get]
func (h *SocialHandler) Posts(c echo.Context) error {
	posts, err := h.socialService.PagePosts(c.Request().Context(), c.Param("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Comments handles GET /api/pages/:page/posts/:postID/comments.
func (h *SocialHandler) Comments(c echo.Context) error {
	comments, err := h.socialService.PostComments(c.Request().Context(), c.Param("page"), c.Param("postID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Likes handles GET /api/pages/:page/posts/:postID/likes.
func (h *SocialHandler) Likes(c echo.Context) error {
	likes, err := h.socialService.PostLikes(c.Request().Context(), c.Param("page"), c.Param("postID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// Followers handles GET /api/pages/:page/followers.
func (h *SocialHandler) Followers(c echo.Context) error {
	count, err := h.socialService.PageFollowers(c.Request().Context(), c.Param("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int{"followersCount": count})
}

// Analytics handles GET /api/pages/:page/analytics.
//
// @Summary      Aggregate page analytics
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        page  path  string  true  "Configured page slug"
// @Success      200  {object}  domain.PageAnalytics
// @Failure      404  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/pages/{page}/analytics [get]
func (h *SocialHandler) Analytics(c echo.Context) error {
	analytics, err := h.socialService.PageAnalytics(c.Request().Context(), c.Param("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analytics)
}

// InstagramInsights handles GET /api/instagram/insights.
func (h *SocialHandler) InstagramInsights(c echo.Context) error {
	insights, err := h.socialService.InstagramInsights(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insights)
}
