package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// ---------------------------------------------------------------------------
// TokenAuthenticator
// ---------------------------------------------------------------------------

func TestTokenAuthenticator_ValidToken(t *testing.T) {
	auth := NewTokenAuthenticator("k")
	tok := signedToken(t, "k", jwt.MapClaims{
		"sub":   "u1",
		"email": "ann@example.com",
		"role":  domain.RoleClient,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	state, identity := auth.Authenticate(context.Background(), bearerRequest(tok))
	if state != domain.AuthenticatedStandard {
		t.Fatalf("state = %v, want authenticated", state)
	}
	if identity.SubjectID != "u1" || identity.Email != "ann@example.com" {
		t.Errorf("identity = %+v", identity)
	}
}

func TestTokenAuthenticator_AdminRole(t *testing.T) {
	auth := NewTokenAuthenticator("k")
	tok := signedToken(t, "k", jwt.MapClaims{
		"sub":  "u1",
		"role": domain.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	state, _ := auth.Authenticate(context.Background(), bearerRequest(tok))
	if state != domain.AuthenticatedAdmin {
		t.Fatalf("state = %v, want admin", state)
	}
}

func TestTokenAuthenticator_Unauthenticated(t *testing.T) {
	auth := NewTokenAuthenticator("k")

	expired := signedToken(t, "k", jwt.MapClaims{
		"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongSecret := signedToken(t, "not-k", jwt.MapClaims{
		"sub": "u1", "exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubject := signedToken(t, "k", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name string
		req  *http.Request
	}{
		{"missing header", bearerRequest("")},
		{"malformed token", bearerRequest("not-a-token")},
		{"expired token", bearerRequest(expired)},
		{"wrong secret", bearerRequest(wrongSecret)},
		{"no subject claim", bearerRequest(noSubject)},
		{"wrong scheme", func() *http.Request {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", "Basic abc")
			return r
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, identity := auth.Authenticate(context.Background(), tc.req)
			if state != domain.Unauthenticated {
				t.Errorf("state = %v, want unauthenticated", state)
			}
			if identity != nil {
				t.Errorf("identity = %+v, want nil", identity)
			}
		})
	}
}

func TestTokenAuthenticator_LegacySubjectClaims(t *testing.T) {
	auth := NewTokenAuthenticator("k")

	for _, claim := range []string{"user_id", "id"} {
		tok := signedToken(t, "k", jwt.MapClaims{
			claim: "legacy-7",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		_, identity := auth.Authenticate(context.Background(), bearerRequest(tok))
		if identity == nil || identity.SubjectID != "legacy-7" {
			t.Errorf("claim %q: identity = %+v, want subject legacy-7", claim, identity)
		}
	}
}

// ---------------------------------------------------------------------------
// CookieAuthenticator
// ---------------------------------------------------------------------------

type stubProvider struct {
	session    *domain.Session
	resolveErr error

	signInSession *ports.HostedSession
	signInErr     error
	signOutErr    error
	signOutCalls  int
}

func (p *stubProvider) SignIn(_ context.Context, _, _ string) (*ports.HostedSession, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return p.signInSession, nil
}

func (p *stubProvider) ResolveSession(_ context.Context, _ string) (*domain.Session, error) {
	if p.resolveErr != nil {
		return nil, p.resolveErr
	}
	return p.session, nil
}

func (p *stubProvider) SignOut(_ context.Context, _ string) error {
	p.signOutCalls++
	return p.signOutErr
}

type stubMembership struct {
	admin bool
	err   error
}

func (m *stubMembership) IsAdmin(_ context.Context, _ string) (bool, error) {
	return m.admin, m.err
}

func cookieRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	}
	return req
}

func TestCookieAuthenticator_Admin(t *testing.T) {
	auth := NewCookieAuthenticator(
		&stubProvider{session: &domain.Session{SubjectID: "s1", Email: "a@b.c"}},
		&stubMembership{admin: true},
		zerolog.Nop(),
	)

	state, identity := auth.Authenticate(context.Background(), cookieRequest("tok"))
	if state != domain.AuthenticatedAdmin {
		t.Fatalf("state = %v, want admin", state)
	}
	if identity.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", identity.Role)
	}
}

func TestCookieAuthenticator_StandardUser(t *testing.T) {
	auth := NewCookieAuthenticator(
		&stubProvider{session: &domain.Session{SubjectID: "s1"}},
		&stubMembership{admin: false},
		zerolog.Nop(),
	)

	state, identity := auth.Authenticate(context.Background(), cookieRequest("tok"))
	if state != domain.AuthenticatedStandard {
		t.Fatalf("state = %v, want authenticated", state)
	}
	if identity == nil || identity.SubjectID != "s1" {
		t.Errorf("identity = %+v", identity)
	}
}

func TestCookieAuthenticator_MissingCookie(t *testing.T) {
	auth := NewCookieAuthenticator(&stubProvider{}, &stubMembership{}, zerolog.Nop())

	state, _ := auth.Authenticate(context.Background(), cookieRequest(""))
	if state != domain.Unauthenticated {
		t.Fatalf("state = %v, want unauthenticated", state)
	}
}

func TestCookieAuthenticator_InvalidSession(t *testing.T) {
	auth := NewCookieAuthenticator(
		&stubProvider{resolveErr: domain.ErrUnauthorized},
		&stubMembership{admin: true},
		zerolog.Nop(),
	)

	state, _ := auth.Authenticate(context.Background(), cookieRequest("stale"))
	if state != domain.Unauthenticated {
		t.Fatalf("state = %v, want unauthenticated", state)
	}
}

// An unreachable provider must deny, never guess.
func TestCookieAuthenticator_ProviderErrorFailsClosed(t *testing.T) {
	auth := NewCookieAuthenticator(
		&stubProvider{resolveErr: errors.New("connection refused")},
		&stubMembership{admin: true},
		zerolog.Nop(),
	)

	state, identity := auth.Authenticate(context.Background(), cookieRequest("tok"))
	if state != domain.Unauthenticated {
		t.Fatalf("state = %v, want unauthenticated", state)
	}
	if identity != nil {
		t.Errorf("identity = %+v, want nil", identity)
	}
}

// A valid session whose membership lookup fails must also deny: privilege
// cannot be determined, so none is granted.
func TestCookieAuthenticator_MembershipErrorFailsClosed(t *testing.T) {
	auth := NewCookieAuthenticator(
		&stubProvider{session: &domain.Session{SubjectID: "s1"}},
		&stubMembership{err: errors.New("query timeout")},
		zerolog.Nop(),
	)

	state, identity := auth.Authenticate(context.Background(), cookieRequest("tok"))
	if state != domain.Unauthenticated {
		t.Fatalf("state = %v, want unauthenticated", state)
	}
	if identity != nil {
		t.Errorf("identity = %+v, want nil", identity)
	}
}
