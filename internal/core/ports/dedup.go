package ports

import "context"

// SubscribeDeduper suppresses repeat newsletter subscriptions for an email
// address within a retention window.
type SubscribeDeduper interface {
	Seen(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}
