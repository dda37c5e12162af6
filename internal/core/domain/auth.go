package domain

import "time"

// AuthState is the tri-state outcome of an authentication check.
type AuthState int

const (
	// Unauthenticated means no valid credential was presented.
	Unauthenticated AuthState = iota
	// AuthenticatedStandard means a valid session without admin privilege.
	AuthenticatedStandard
	// AuthenticatedAdmin means a valid session whose subject holds admin
	// membership.
	AuthenticatedAdmin
)

func (s AuthState) String() string {
	switch s {
	case AuthenticatedStandard:
		return "authenticated"
	case AuthenticatedAdmin:
		return "admin"
	default:
		return "unauthenticated"
	}
}

// Identity describes the principal behind an authenticated request.
type Identity struct {
	SubjectID string
	Email     string
	Role      string
}

// Session is an authenticated session resolved from the hosted identity
// provider. Role is fixed for the session's lifetime; a role change requires
// re-issuing the session.
type Session struct {
	SubjectID string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
