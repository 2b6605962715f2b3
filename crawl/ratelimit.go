package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces requests with a fixed minimum delay between request starts.
// The limiter is shared by all workers of a crawl, so the delay bounds the
// whole job's request rate, not each worker's.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter enforcing the given delay between requests.
// A non-positive delay disables pacing.
func NewLimiter(delay time.Duration) *Limiter {
	if delay <= 0 {
		return &Limiter{}
	}
	return &Limiter{l: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next request may start.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.l == nil {
		return ctx.Err()
	}
	return l.l.Wait(ctx)
}
