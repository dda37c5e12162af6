package ports

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// AuthService implements the experimental register/login flow.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
