package ports

import (
	"context"

	"github.com/voxdigify/crm-api/internal/core/domain"
)

// Page is a configured Facebook page the service is allowed to query.
type Page struct {
	ID          string
	AccessToken string
}

// GraphAPI is the outbound Facebook/Instagram Graph API surface used by the
// social service. Implementations follow paging cursors up to an internal cap,
// so returned collections may be larger than a single Graph page.
type GraphAPI interface {
	PagePosts(ctx context.Context, pageID, token string) ([]domain.PagePost, error)
	PostComments(ctx context.Context, postID, token string) ([]domain.PostComment, error)
	PostLikes(ctx context.Context, postID, token string) ([]domain.PostLike, error)
	PageFollowers(ctx context.Context, pageID, token string) (int, error)
	InstagramAccount(ctx context.Context, accountID, token string) (followers, media int, err error)
	InstagramReach(ctx context.Context, accountID, token string) ([]domain.InsightValue, error)
	InstagramTotals(ctx context.Context, accountID, token string) ([]domain.InstagramMetric, error)
}

// RateLimiter guards outbound third-party calls. Allow returns
// domain.ErrRateLimited once the window budget for key is spent.
type RateLimiter interface {
	Allow(ctx context.Context, key string) error
}

// SocialService exposes the per-page proxy reads and the derived analytics
// aggregates.
type SocialService interface {
	PagePosts(ctx context.Context, page string) ([]domain.PagePost, error)
	PostComments(ctx context.Context, page, postID string) ([]domain.PostComment, error)
	PostLikes(ctx context.Context, page, postID string) ([]domain.PostLike, error)
	PageFollowers(ctx context.Context, page string) (int, error)
	PageAnalytics(ctx context.Context, page string) (*domain.PageAnalytics, error)
	InstagramInsights(ctx context.Context) (*domain.InstagramInsights, error)
}
