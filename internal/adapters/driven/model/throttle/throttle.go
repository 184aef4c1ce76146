// Package throttle limits the request rate of model adapters.
// It uses a token bucket with an extra backoff window set from 429
// responses.
package throttle

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// DefaultBackoff applies when a 429 response has no usable Retry-After.
const DefaultBackoff = 30 * time.Second

// Limiter throttles outbound requests. A nil *Limiter never blocks.
type Limiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// New creates a limiter allowing requestsPerSecond with the given burst.
// It returns nil when requestsPerSecond <= 0, which disables throttling.
func New(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by a previous 429 response.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return ctx.Err()
	}

	// First, check for backoff from previous rate limit errors
	l.mu.Lock()
	retryAt := l.retryAt
	l.mu.Unlock()

	if wait := time.Until(retryAt); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	// Then wait for the token bucket
	return l.limiter.Wait(ctx)
}

// Observe records a rate limit response. Other responses are ignored.
// It reports whether resp was a rate limit response.
func (l *Limiter) Observe(resp *http.Response) bool {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return false
	}
	if l == nil {
		return true
	}

	backoff := DefaultBackoff
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
			backoff = time.Duration(seconds) * time.Second
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.retryAt = time.Now().Add(backoff)
	return true
}

// RetryAt returns the end of the current backoff window.
func (l *Limiter) RetryAt() time.Time {
	if l == nil {
		return time.Time{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.retryAt
}
