package domain

import "errors"

var ErrPageNotConfigured = errors.New("page not configured")
var ErrRateLimited = errors.New("rate limit exceeded")

// PagePost is a single post on a Facebook page feed.
type PagePost struct {
	ID          string `json:"id"`
	Message     string `json:"message,omitempty"`
	CreatedTime string `json:"created_time"`
}

// PostComment is a comment left on a page post.
type PostComment struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	CreatedTime string `json:"created_time"`
}

// PostLike identifies an actor that liked a post.
type PostLike struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostEngagement holds the per-post like/comment counts that feed the page
// analytics breakdown.
type PostEngagement struct {
	PostID   string `json:"postId"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

// PageAnalytics is the aggregate computed over a page's posts. Counts are the
// lengths of the collections returned by the Graph API. Errors lists posts
// whose engagement could not be fetched; such posts are excluded from the
// totals rather than failing the whole aggregate.
type PageAnalytics struct {
	TotalPosts    int              `json:"totalPosts"`
	TotalLikes    int              `json:"totalLikes"`
	TotalComments int              `json:"totalComments"`
	Posts         []PostEngagement `json:"posts"`
	Errors        []string         `json:"errors,omitempty"`
}

// InsightValue is one point of a time-series insight metric.
type InsightValue struct {
	Value   int    `json:"value"`
	EndTime string `json:"end_time,omitempty"`
}

// InstagramMetric is a total-value insight metric (likes, comments, shares,
// saves, total_interactions).
type InstagramMetric struct {
	Name        string `json:"name"`
	TotalValue  int    `json:"total_value"`
	Description string `json:"description,omitempty"`
}

// InstagramInsights is the on-demand snapshot for the configured Instagram
// business account. Not persisted.
type InstagramInsights struct {
	FollowersCount int               `json:"followers_count"`
	MediaCount     int               `json:"media_count"`
	Reach          []InsightValue    `json:"reach"`
	Metrics        []InstagramMetric `json:"metrics"`
}
