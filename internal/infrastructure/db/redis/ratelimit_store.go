package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// RateLimitStore is the fixed-window counter store for deployments running
// more than one instance behind a load balancer. It uses INCR with a
// window-length expiry; unlike the in-memory store, rejected calls still
// advance the counter, which only tightens the quota.
type RateLimitStore struct {
	client *redis.Client
}

var _ ports.RateLimitStore = (*RateLimitStore)(nil)

func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

func (s *RateLimitStore) Take(ctx context.Context, identifier string, policy domain.RateLimitPolicy) (domain.RateLimitDecision, error) {
	key := fmt.Sprintf("ratelimit:%s", identifier)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, policy.Window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.RateLimitDecision{}, fmt.Errorf("ratelimit take: %w", err)
	}

	count := incr.Val()
	resetAt := time.Now().Add(ttl.Val())

	remaining := policy.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	d := domain.RateLimitDecision{
		Allowed:   count <= int64(policy.MaxRequests),
		Limit:     policy.MaxRequests,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !d.Allowed {
		d.RetryAfter = ttl.Val()
	}
	return d, nil
}
