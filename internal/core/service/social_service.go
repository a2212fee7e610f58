package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/voxdigify/crm-api/internal/api/metrics"
	"github.com/voxdigify/crm-api/internal/core/domain"
	"github.com/voxdigify/crm-api/internal/core/ports"
)

// maxConcurrentPostFetches caps the per-post engagement fan-out so a large
// feed does not flood the Graph API.
const maxConcurrentPostFetches = 5

// InstagramAccount identifies the configured Instagram business account.
type InstagramAccount struct {
	AccountID   string
	AccessToken string
}

// SocialService proxies per-page Graph API reads and computes the derived
// analytics aggregates on demand. Nothing is cached; every call recomputes
// from fresh Graph responses.
type SocialService struct {
	graph   ports.GraphAPI
	limiter ports.RateLimiter
	pages   map[string]ports.Page
	insta   InstagramAccount
	logger  zerolog.Logger
}

func NewSocialService(graph ports.GraphAPI, limiter ports.RateLimiter, pages map[string]ports.Page, insta InstagramAccount, logger zerolog.Logger) *SocialService {
	return &SocialService{graph: graph, limiter: limiter, pages: pages, insta: insta, logger: logger}
}

func (s *SocialService) page(name string) (ports.Page, error) {
	p, ok := s.pages[name]
	if !ok {
		return ports.Page{}, domain.ErrPageNotConfigured
	}
	return p, nil
}

func (s *SocialService) allow(ctx context.Context, page string) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Allow(ctx, "graph:"+page)
}

func (s *SocialService) PagePosts(ctx context.Context, page string) ([]domain.PagePost, error) {
	p, err := s.page(page)
	if err != nil {
		return nil, err
	}
	if err := s.allow(ctx, page); err != nil {
		return nil, err
	}
	return s.graph.PagePosts(ctx, p.ID, p.AccessToken)
}

func (s *SocialService) PostComments(ctx context.Context, page, postID string) ([]domain.PostComment, error) {
	p, err := s.page(page)
	if err != nil {
		return nil, err
	}
	if err := s.allow(ctx, page); err != nil {
		return nil, err
	}
	return s.graph.PostComments(ctx, postID, p.AccessToken)
}

func (s *SocialService) PostLikes(ctx context.Context, page, postID string) ([]domain.PostLike, error) {
	p, err := s.page(page)
	if err != nil {
		return nil, err
	}
	if err := s.allow(ctx, page); err != nil {
		return nil, err
	}
	return s.graph.PostLikes(ctx, postID, p.AccessToken)
}

func (s *SocialService) PageFollowers(ctx context.Context, page string) (int, error) {
	p, err := s.page(page)
	if err != nil {
		return 0, err
	}
	if err := s.allow(ctx, page); err != nil {
		return 0, err
	}
	return s.graph.PageFollowers(ctx, p.ID, p.AccessToken)
}

// PageAnalytics fetches the page feed and fans out over its posts with
// bounded concurrency, summing like and comment counts. Posts whose
// engagement fetch fails are reported in Errors and excluded from the totals;
// only a failure to list the feed at all fails the aggregate.
func (s *SocialService) PageAnalytics(ctx context.Context, page string) (*domain.PageAnalytics, error) {
	p, err := s.page(page)
	if err != nil {
		return nil, err
	}
	if err := s.allow(ctx, page); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.AnalyticsDuration.Observe(time.Since(start).Seconds())
	}()

	posts, err := s.graph.PagePosts(ctx, p.ID, p.AccessToken)
	if err != nil {
		s.logger.Error().Err(err).Str("page", page).Msg("failed to fetch page posts")
		return nil, err
	}

	analytics := &domain.PageAnalytics{
		TotalPosts: len(posts),
		Posts:      make([]domain.PostEngagement, 0, len(posts)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPostFetches)

	for _, post := range posts {
		post := post
		g.Go(func() error {
			if err := s.allow(gctx, page); err != nil {
				s.recordFailure(analytics, &mu, post.ID, err)
				return nil
			}

			likes, err := s.graph.PostLikes(gctx, post.ID, p.AccessToken)
			if err != nil {
				s.recordFailure(analytics, &mu, post.ID, err)
				return nil
			}

			if err := s.allow(gctx, page); err != nil {
				s.recordFailure(analytics, &mu, post.ID, err)
				return nil
			}

			comments, err := s.graph.PostComments(gctx, post.ID, p.AccessToken)
			if err != nil {
				s.recordFailure(analytics, &mu, post.ID, err)
				return nil
			}

			mu.Lock()
			analytics.TotalLikes += len(likes)
			analytics.TotalComments += len(comments)
			analytics.Posts = append(analytics.Posts, domain.PostEngagement{
				PostID:   post.ID,
				Likes:    len(likes),
				Comments: len(comments),
			})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	// The fan-out finishes in arbitrary order; keep output deterministic.
	sort.Slice(analytics.Posts, func(i, j int) bool {
		return analytics.Posts[i].PostID < analytics.Posts[j].PostID
	})
	sort.Strings(analytics.Errors)

	s.logger.Info().
		Str("page", page).
		Int("total_posts", analytics.TotalPosts).
		Int("failed_posts", len(analytics.Errors)).
		Msg("page analytics computed")

	return analytics, nil
}

func (s *SocialService) recordFailure(a *domain.PageAnalytics, mu *sync.Mutex, postID string, err error) {
	s.logger.Warn().Err(err).Str("post_id", postID).Msg("post engagement fetch failed")
	metrics.AnalyticsPartialFailuresTotal.Inc()

	mu.Lock()
	a.Errors = append(a.Errors, fmt.Sprintf("%s: %v", postID, err))
	mu.Unlock()
}

// InstagramInsights fetches the account snapshot for the configured Instagram
// business account.
func (s *SocialService) InstagramInsights(ctx context.Context) (*domain.InstagramInsights, error) {
	if s.insta.AccountID == "" {
		return nil, domain.ErrPageNotConfigured
	}
	if err := s.allow(ctx, "instagram"); err != nil {
		return nil, err
	}

	followers, media, err := s.graph.InstagramAccount(ctx, s.insta.AccountID, s.insta.AccessToken)
	if err != nil {
		return nil, err
	}

	reach, err := s.graph.InstagramReach(ctx, s.insta.AccountID, s.insta.AccessToken)
	if err != nil {
		return nil, err
	}

	totals, err := s.graph.InstagramTotals(ctx, s.insta.AccountID, s.insta.AccessToken)
	if err != nil {
		return nil, err
	}

	return &domain.InstagramInsights{
		FollowersCount: followers,
		MediaCount:     media,
		Reach:          reach,
		Metrics:        totals,
	}, nil
}
