package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/amishk599/jobhunter/internal/model"
)

// SourceRateLimiter throttles outbound calls per provider with a token bucket.
// One instance is shared by every request so limits hold across them.
type SourceRateLimiter struct {
	mu       sync.Mutex
	limiters map[model.Source]*rate.Limiter
	rps      map[model.Source]float64 // zero or missing means unlimited
}

// NewSourceRateLimiter creates a limiter allowing rps[src] requests per
// second to each provider, with a burst of one.
func NewSourceRateLimiter(rps map[model.Source]float64) *SourceRateLimiter {
	copied := make(map[model.Source]float64, len(rps))
	for src, r := range rps {
		copied[src] = r
	}
	return &SourceRateLimiter{
		limiters: make(map[model.Source]*rate.Limiter),
		rps:      copied,
	}
}

// Enabled reports whether any provider is throttled.
func (r *SourceRateLimiter) Enabled() bool {
	for _, v := range r.rps {
		if v > 0 {
			return true
		}
	}
	return false
}

func (r *SourceRateLimiter) limiterFor(src model.Source) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.limiters[src]; ok {
		return l
	}
	rps := r.rps[src]
	if rps <= 0 {
		return nil
	}
	l := rate.NewLimiter(rate.Limit(rps), 1)
	r.limiters[src] = l
	return l
}

// Wait blocks until a call to src is allowed. It fails fast when the wait
// would outlast ctx's deadline.
func (r *SourceRateLimiter) Wait(ctx context.Context, src model.Source) error {
	l := r.limiterFor(src)
	if l == nil {
		return nil
	}
	if err := l.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait for %s: %w", src, err)
	}
	return nil
}

// RateLimitedSearcher is a decorator that waits on the shared limiter before
// delegating to the wrapped JobSearcher.
type RateLimitedSearcher struct {
	inner   model.JobSearcher
	limiter *SourceRateLimiter
}

// NewRateLimitedSearcher wraps a JobSearcher with per-provider throttling.
func NewRateLimitedSearcher(inner model.JobSearcher, limiter *SourceRateLimiter) *RateLimitedSearcher {
	return &RateLimitedSearcher{inner: inner, limiter: limiter}
}

func (s *RateLimitedSearcher) Source() model.Source { return s.inner.Source() }

// Search waits for the limiter, then delegates. A failed wait counts as an
// upstream failure for that provider.
func (s *RateLimitedSearcher) Search(ctx context.Context, q model.SearchQuery) ([]model.Job, error) {
	if err := s.limiter.Wait(ctx, s.inner.Source()); err != nil {
		return nil, &model.UpstreamError{Source: s.inner.Source(), Err: err}
	}
	return s.inner.Search(ctx, q)
}
