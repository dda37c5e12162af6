package ports

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// RateLimitStore tracks per-identifier fixed-window counters.
//
// Take performs one checkAndConsume: it admits and increments while the
// identifier's count for the current window is below the policy maximum,
// and rejects without incrementing once the maximum is reached.
// Implementations must be safe for concurrent use.
type RateLimitStore interface {
	Take(ctx context.Context, identifier string, policy domain.RateLimitPolicy) (domain.RateLimitDecision, error)
}
