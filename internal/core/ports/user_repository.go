package ports

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// UserRepository defines persistence for experimental-auth accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
