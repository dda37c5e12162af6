package ports

import (
	"context"
	"net/http"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// Authenticator resolves the authentication state of an inbound request.
//
// Implementations extract their own credential (bearer header or cookie
// pair), never return an error, and fail closed: any verification or
// collaborator failure yields domain.Unauthenticated. The identity is nil
// unless the state is one of the authenticated states.
type Authenticator interface {
	Authenticate(ctx context.Context, r *http.Request) (domain.AuthState, *domain.Identity)
}
