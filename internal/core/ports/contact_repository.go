package ports

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// ContactRepository defines persistence for contact-form messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}
