package notifier

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter paces webhook posts so each target stays below its documented
// request limit.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter allows requestsPerSecond sustained with the given burst.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Allow blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Allow(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}
