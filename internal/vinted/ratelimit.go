package vinted

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily request budget is spent.
var ErrDailyLimitReached = errors.New("daily request limit reached")

// RateLimiter throttles catalog requests with a token bucket and caps the
// number of requests per rolling 24-hour window. A zero daily limit means
// no daily cap.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	daily   int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond requests with the
// given burst and at most maxDaily requests per window.
func NewRateLimiter(perSecond float64, burst int, maxDaily int64, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait reserves one request. It fails fast with ErrDailyLimitReached once
// the window budget is spent, otherwise blocks on the token bucket.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserveDaily(); err != nil {
		return err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		r.release()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// DailyCount returns the requests made in the current window.
func (r *RateLimiter) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollWindow()
	return r.daily
}

// Remaining returns the requests left in the current window, or -1 when
// there is no daily cap.
func (r *RateLimiter) Remaining() int64 {
	if r.maxDaily <= 0 {
		return -1
	}
	return max(r.maxDaily-r.DailyCount(), 0)
}

// ResetAt returns when the current window expires.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollWindow()
	return r.resetAt
}

func (r *RateLimiter) reserveDaily() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollWindow()
	if r.maxDaily > 0 && r.daily >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d, resets %s)",
			ErrDailyLimitReached, r.daily, r.maxDaily, r.resetAt.Format(time.RFC3339))
	}
	r.daily++
	return nil
}

func (r *RateLimiter) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.daily > 0 {
		r.daily--
	}
}

// rollWindow must be called with mu held.
func (r *RateLimiter) rollWindow() {
	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily = 0
		r.resetAt = now.Add(24 * time.Hour)
	}
}
