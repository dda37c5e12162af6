package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// Cookie names of the hosted-session token pair.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
)

// TokenAuthenticator resolves authentication state from a signed bearer
// token in the Authorization header. Verification failures of any kind
// (missing, malformed, expired, bad signature) yield Unauthenticated; no
// error ever crosses this boundary.
type TokenAuthenticator struct {
	secret []byte
}

func NewTokenAuthenticator(jwtSecret string) *TokenAuthenticator {
	return &TokenAuthenticator{secret: []byte(jwtSecret)}
}

var _ ports.Authenticator = (*TokenAuthenticator)(nil)

func (a *TokenAuthenticator) Authenticate(_ context.Context, r *http.Request) (domain.AuthState, *domain.Identity) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return domain.Unauthenticated, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return domain.Unauthenticated, nil
	}

	identity, ok := a.Verify(parts[1])
	if !ok {
		return domain.Unauthenticated, nil
	}
	if identity.Role == domain.RoleAdmin {
		return domain.AuthenticatedAdmin, identity
	}
	return domain.AuthenticatedStandard, identity
}

// Verify parses and validates a signed token, returning the embedded
// identity. The subject claim is read from "sub", falling back to the
// legacy "user_id" and "id" claim names.
func (a *TokenAuthenticator) Verify(token string) (*domain.Identity, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}

	subject := stringClaim(claims, "sub")
	if subject == "" {
		subject = stringClaim(claims, "user_id")
	}
	if subject == "" {
		subject = stringClaim(claims, "id")
	}
	if subject == "" {
		return nil, false
	}

	return &domain.Identity{
		SubjectID: subject,
		Email:     stringClaim(claims, "email"),
		Role:      stringClaim(claims, "role"),
	}, true
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

// CookieAuthenticator resolves authentication state from the hosted-session
// cookie pair: the access token is validated against the identity provider,
// then admin privilege is looked up in the membership store.
//
// Every failure path is fail-closed: a provider error, a membership lookup
// error, or a missing cookie all yield Unauthenticated.
type CookieAuthenticator struct {
	provider   ports.IdentityProvider
	membership ports.MembershipStore
	log        zerolog.Logger
}

func NewCookieAuthenticator(provider ports.IdentityProvider, membership ports.MembershipStore, log zerolog.Logger) *CookieAuthenticator {
	return &CookieAuthenticator{provider: provider, membership: membership, log: log}
}

var _ ports.Authenticator = (*CookieAuthenticator)(nil)

func (a *CookieAuthenticator) Authenticate(ctx context.Context, r *http.Request) (domain.AuthState, *domain.Identity) {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return domain.Unauthenticated, nil
	}

	session, err := a.provider.ResolveSession(ctx, cookie.Value)
	if err != nil {
		if err != domain.ErrUnauthorized {
			a.log.Error().Err(err).Msg("session resolution failed")
		}
		return domain.Unauthenticated, nil
	}

	identity := &domain.Identity{SubjectID: session.SubjectID, Email: session.Email, Role: session.Role}

	admin, err := a.membership.IsAdmin(ctx, session.SubjectID)
	if err != nil {
		// Privilege cannot be determined; deny rather than guess.
		a.log.Error().Err(err).Str("subject", session.SubjectID).Msg("admin membership lookup failed")
		return domain.Unauthenticated, nil
	}
	if admin {
		identity.Role = domain.RoleAdmin
		return domain.AuthenticatedAdmin, identity
	}
	return domain.AuthenticatedStandard, identity
}
