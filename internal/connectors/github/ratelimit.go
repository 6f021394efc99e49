package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

const (
	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"
)

// RateLimiter paces requests and records the last quota the API reported.
// It never blocks until a quota reset; exhaustion is the caller's concern.
type RateLimiter struct {
	mu        sync.Mutex
	observed  bool
	remaining int       // From API header
	limit     int       // From API header
	resetTime time.Time // From API header
	bucket    *rate.Limiter
}

// NewRateLimiter creates a limiter allowing requestsPerSecond requests.
// Zero or less disables pacing.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	r := &RateLimiter{}
	if requestsPerSecond > 0 {
		r.bucket = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return r
}

// Wait blocks until the pacing bucket admits one request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.bucket == nil {
		return ctx.Err()
	}
	return r.bucket.Wait(ctx)
}

// Paced reports whether pacing is enabled.
func (r *RateLimiter) Paced() bool {
	return r.bucket != nil
}

// UpdateFromResponse records rate limit state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
			r.observed = true
		}
	}

	if limit := resp.Header.Get(HeaderRateLimit); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			r.limit = val
		}
	}

	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetTime = time.Unix(val, 0)
		}
	}
}

// Observed returns the last quota seen in response headers.
// ok is false until a response carrying the headers has been seen.
func (r *RateLimiter) Observed() (q domain.Quota, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.Quota{
		Limit:     r.limit,
		Remaining: r.remaining,
		ResetAt:   r.resetTime,
	}, r.observed
}
