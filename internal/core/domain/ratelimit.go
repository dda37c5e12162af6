package domain

import "time"

// RateLimitPolicy bounds how many requests a single client identifier may
// make within one fixed window.
type RateLimitPolicy struct {
	MaxRequests int
	Window      time.Duration
}

// DefaultRateLimitPolicy applies to mutating endpoints without an override.
var DefaultRateLimitPolicy = RateLimitPolicy{MaxRequests: 100, Window: time.Minute}

// RateLimitDecision is the outcome of one checkAndConsume call.
type RateLimitDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RetryAfterSeconds is the retry hint reported to rejected callers, rounded
// up to whole seconds.
func (d RateLimitDecision) RetryAfterSeconds() int {
	if d.RetryAfter <= 0 {
		return 0
	}
	return int((d.RetryAfter + time.Second - 1) / time.Second)
}
