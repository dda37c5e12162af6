package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/haryawn/law-firm-api/internal/core/ports"
)

const dedupTTL = 24 * time.Hour

// SubscribeDedup suppresses repeat newsletter subscriptions, backed by
// Redis. Key format: subscribe:<email>
type SubscribeDedup struct {
	client *redis.Client
}

var _ ports.SubscribeDeduper = (*SubscribeDedup)(nil)

// NewSubscribeDedup creates a SubscribeDedup wrapping the given Redis client.
func NewSubscribeDedup(client *redis.Client) *SubscribeDedup {
	return &SubscribeDedup{client: client}
}

// Seen reports whether this email subscribed within the retention window.
func (d *SubscribeDedup) Seen(ctx context.Context, email string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this email has subscribed (expires after dedupTTL).
func (d *SubscribeDedup) Mark(ctx context.Context, email string) error {
	return d.client.Set(ctx, d.key(email), "1", dedupTTL).Err()
}

func (d *SubscribeDedup) key(email string) string {
	return fmt.Sprintf("subscribe:%s", email)
}
