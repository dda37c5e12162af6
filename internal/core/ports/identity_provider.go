package ports

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// HostedSession is a session issued by the hosted identity provider,
// including the opaque token pair stored in the client's cookies.
type HostedSession struct {
	Session      domain.Session
	AccessToken  string
	RefreshToken string
}

// IdentityProvider is the external identity collaborator behind the hosted
// cookie flow. Callers impose their own timeout via ctx.
type IdentityProvider interface {
	// SignIn performs a password grant and returns the issued session.
	SignIn(ctx context.Context, email, password string) (*HostedSession, error)
	// ResolveSession validates an access token and returns the session it
	// belongs to, or domain.ErrUnauthorized when the token is not valid.
	ResolveSession(ctx context.Context, accessToken string) (*domain.Session, error)
	// SignOut revokes the session behind the access token. Best effort.
	SignOut(ctx context.Context, accessToken string) error
}

// MembershipStore looks up admin privilege for a session subject. Absence
// of a record means the subject is not an admin, independent of whether a
// session exists.
type MembershipStore interface {
	IsAdmin(ctx context.Context, subjectID string) (bool, error)
}
