// Package ratelimit provides the process-local fixed-window counter store.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

type counter struct {
	count   int
	resetAt time.Time
}

// MemoryStore keeps one fixed-window counter per client identifier in a
// mutex-guarded map. Counters are created lazily on first request; a
// background sweep removes entries whose window has passed so the map does
// not grow without bound.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

var _ ports.RateLimitStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]*counter),
		now:      time.Now,
	}
}

// Take implements one fixed-window checkAndConsume. A rejected call does
// not increment the counter.
func (s *MemoryStore) Take(_ context.Context, identifier string, policy domain.RateLimitPolicy) (domain.RateLimitDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	c, ok := s.counters[identifier]
	if !ok || !now.Before(c.resetAt) {
		c = &counter{count: 1, resetAt: now.Add(policy.Window)}
		s.counters[identifier] = c
		return s.decision(c, policy, true), nil
	}

	if c.count >= policy.MaxRequests {
		d := s.decision(c, policy, false)
		d.RetryAfter = c.resetAt.Sub(now)
		return d, nil
	}

	c.count++
	return s.decision(c, policy, true), nil
}

func (s *MemoryStore) decision(c *counter, policy domain.RateLimitPolicy, allowed bool) domain.RateLimitDecision {
	remaining := policy.MaxRequests - c.count
	if remaining < 0 {
		remaining = 0
	}
	return domain.RateLimitDecision{
		Allowed:   allowed,
		Limit:     policy.MaxRequests,
		Remaining: remaining,
		ResetAt:   c.resetAt,
	}
}

// StartSweeper removes expired counters every interval until ctx is
// cancelled.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, c := range s.counters {
		if !now.Before(c.resetAt) {
			delete(s.counters, id)
		}
	}
}
