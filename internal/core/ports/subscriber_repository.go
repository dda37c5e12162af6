package ports

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// SubscriberRepository defines persistence for newsletter subscriptions.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error)
	Count(ctx context.Context) (int64, error)
}
