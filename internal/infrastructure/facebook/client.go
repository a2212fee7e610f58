// Package facebook implements the outbound Facebook/Instagram Graph API
// client used by the social analytics service.
package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/voxdigify/crm-api/internal/api/metrics"
	"github.com/voxdigify/crm-api/internal/core/domain"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	// maxFeedPages caps cursor following on list endpoints so a large page
	// feed cannot turn one analytics request into an unbounded crawl.
	maxFeedPages = 10
)

// Client talks to the Graph API. BaseURL carries the API version prefix
// (e.g. https://graph.facebook.com/v16.0); tests point it at a local server.
type Client struct {
	httpClient *http.Client
	baseURL    string
	igBaseURL  string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithInstagramBaseURL sets a separate base URL for the Instagram endpoints,
// which track a newer Graph version than the page endpoints.
func WithInstagramBaseURL(base string) Option {
	return func(c *Client) { c.igBaseURL = strings.TrimRight(base, "/") }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.igBaseURL == "" {
		c.igBaseURL = c.baseURL
	}
	return c
}

// listEnvelope is the Graph API collection envelope.
type listEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// graphError is the Graph API error envelope.
type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// PagePosts returns the page feed, following paging cursors up to
// maxFeedPages.
func (c *Client) PagePosts(ctx context.Context, pageID, token string) ([]domain.PagePost, error) {
	var posts []domain.PagePost
	err := c.getList(ctx, "posts", c.url(c.baseURL, pageID+"/posts", token, nil), &posts)
	return posts, err
}

// PostComments returns the comments on a post.
func (c *Client) PostComments(ctx context.Context, postID, token string) ([]domain.PostComment, error) {
	var comments []domain.PostComment
	err := c.getList(ctx, "comments", c.url(c.baseURL, postID+"/comments", token, nil), &comments)
	return comments, err
}

// PostLikes returns the likes on a post.
func (c *Client) PostLikes(ctx context.Context, postID, token string) ([]domain.PostLike, error) {
	var likes []domain.PostLike
	err := c.getList(ctx, "likes", c.url(c.baseURL, postID+"/likes", token, nil), &likes)
	return likes, err
}

// PageFollowers returns the page follower count.
func (c *Client) PageFollowers(ctx context.Context, pageID, token string) (int, error) {
	var out struct {
		FollowersCount int `json:"followers_count"`
	}
	u := c.url(c.baseURL, pageID, token, url.Values{"fields": {"followers_count"}})
	if err := c.getJSON(ctx, "followers", u, &out); err != nil {
		return 0, err
	}
	return out.FollowersCount, nil
}

// InstagramAccount returns the follower and media counts for a business
// account.
func (c *Client) InstagramAccount(ctx context.Context, accountID, token string) (int, int, error) {
	var out struct {
		FollowersCount int `json:"followers_count"`
		MediaCount     int `json:"media_count"`
	}
	u := c.url(c.igBaseURL, accountID, token, url.Values{"fields": {"followers_count,media_count"}})
	if err := c.getJSON(ctx, "ig_account", u, &out); err != nil {
		return 0, 0, err
	}
	return out.FollowersCount, out.MediaCount, nil
}

// InstagramReach returns the daily reach series.
func (c *Client) InstagramReach(ctx context.Context, accountID, token string) ([]domain.InsightValue, error) {
	u := c.url(c.igBaseURL, accountID+"/insights", token, url.Values{
		"metric": {"reach"},
		"period": {"day"},
	})

	var env struct {
		Data []struct {
			Values []domain.InsightValue `json:"values"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "ig_insights", u, &env); err != nil {
		return nil, err
	}

	var series []domain.InsightValue
	for _, metric := range env.Data {
		series = append(series, metric.Values...)
	}
	return series, nil
}

// InstagramTotals returns the total-value metrics (likes, comments, shares,
// saves, total_interactions).
func (c *Client) InstagramTotals(ctx context.Context, accountID, token string) ([]domain.InstagramMetric, error) {
	u := c.url(c.igBaseURL, accountID+"/insights", token, url.Values{
		"metric":      {"likes,comments,shares,saves,total_interactions"},
		"metric_type": {"total_value"},
		"period":      {"day"},
	})

	var env struct {
		Data []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			TotalValue  struct {
				Value int `json:"value"`
			} `json:"total_value"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "ig_insights", u, &env); err != nil {
		return nil, err
	}

	totals := make([]domain.InstagramMetric, 0, len(env.Data))
	for _, m := range env.Data {
		totals = append(totals, domain.InstagramMetric{
			Name:        m.Name,
			TotalValue:  m.TotalValue.Value,
			Description: m.Description,
		})
	}
	return totals, nil
}

func (c *Client) url(base, path, token string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)
	return base + "/" + path + "?" + params.Encode()
}

// getList fetches a Graph collection endpoint into out (a *[]T), following
// paging.next cursors up to maxFeedPages.
func (c *Client) getList(ctx context.Context, endpoint, u string, out any) error {
	var all []json.RawMessage
	next := u
	for page := 0; page < maxFeedPages && next != ""; page++ {
		var env listEnvelope
		if err := c.getJSON(ctx, endpoint, next, &env); err != nil {
			return err
		}

		var items []json.RawMessage
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &items); err != nil {
				return fmt.Errorf("graph %s: decode data: %w", endpoint, err)
			}
		}
		all = append(all, items...)
		next = env.Paging.Next
	}

	joined, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("graph %s: %w", endpoint, err)
	}
	return json.Unmarshal(joined, out)
}

func (c *Client) getJSON(ctx context.Context, endpoint, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("graph %s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GraphRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("graph %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GraphRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("graph %s: read body: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.GraphRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		var ge graphError
		if json.Unmarshal(body, &ge) == nil && ge.Error.Message != "" {
			return fmt.Errorf("graph %s: %s (code %d)", endpoint, ge.Error.Message, ge.Error.Code)
		}
		return fmt.Errorf("graph %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	metrics.GraphRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("graph %s: decode: %w", endpoint, err)
	}
	return nil
}
