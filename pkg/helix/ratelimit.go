package helix

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultPointsPerMinute is the Helix rate limit bucket size for an app
	// access token.
	DefaultPointsPerMinute = 800

	defaultBurst = 40
)

// RateLimiter paces requests against the Helix points budget. It uses a
// token bucket refilled at the per-minute rate and tracks the bucket state
// the API reports back in its Ratelimit-* response headers.
type RateLimiter struct {
	limiter *rate.Limiter

	mu        sync.Mutex
	remaining int64
	resetAt   time.Time
	synced    bool
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithBurst overrides the default burst size.
func WithBurst(n int) RateLimiterOption {
	return func(r *RateLimiter) {
		r.limiter.SetBurst(n)
	}
}

// NewRateLimiter creates a rate limiter refilling at pointsPerMinute. Zero
// or negative means the Helix default of 800 points per minute.
func NewRateLimiter(pointsPerMinute float64, opts ...RateLimiterOption) *RateLimiter {
	if pointsPerMinute <= 0 {
		pointsPerMinute = DefaultPointsPerMinute
	}
	r := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(pointsPerMinute/60), defaultBurst),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Wait blocks until the limiter allows the call, or the context is canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// UpdateFromHeaders records the bucket state the API reported with a
// response: Ratelimit-Remaining (points left) and Ratelimit-Reset (unix
// seconds when the bucket is full again). Absent headers leave the previous
// state untouched.
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	remaining, err := strconv.ParseInt(h.Get("Ratelimit-Remaining"), 10, 64)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = remaining
	r.synced = true
	if reset, err := strconv.ParseInt(h.Get("Ratelimit-Reset"), 10, 64); err == nil {
		r.resetAt = time.Unix(reset, 0)
	}
}

// Remaining returns the points left in the bucket as last reported by the
// API, and whether any report has been seen yet.
func (r *RateLimiter) Remaining() (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining, r.synced
}

// ResetAt returns when the API last said the bucket refills completely.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}
