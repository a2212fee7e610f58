package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voxdigify/crm-api/internal/core/domain"
)

const limiterWindow = time.Minute

// RateLimiter is a fixed-window counter backed by Redis, guarding outbound
// Graph API calls. Key format: ratelimit:<key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
}

// NewRateLimiter creates a RateLimiter allowing limit calls per key per
// minute.
func NewRateLimiter(client *redis.Client, limit int) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	return &RateLimiter{client: client, limit: int64(limit)}
}

// Allow consumes one unit of the window budget for key. Returns
// domain.ErrRateLimited when the budget is spent.
func (l *RateLimiter) Allow(ctx context.Context, key string) error {
	k := l.key(key, time.Now())
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("rate limit check: %w", err)
	}
	if n == 1 {
		// First hit in this window owns setting the expiry.
		if err := l.client.Expire(ctx, k, limiterWindow).Err(); err != nil {
			return fmt.Errorf("rate limit expire: %w", err)
		}
	}
	if n > l.limit {
		return domain.ErrRateLimited
	}
	return nil
}

func (l *RateLimiter) key(key string, now time.Time) string {
	window := now.Unix() / int64(limiterWindow.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, window)
}
