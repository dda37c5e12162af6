package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
	"github.com/haryawn/law-firm-api/internal/core/service"
)

const loginPath = "/admin/login"

func invokeGate(t *testing.T, auth ports.Authenticator, path string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AdminPageGate(auth, loginPath)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAdminPageGate_AdminPassesThrough(t *testing.T) {
	auth := &stubAuthenticator{state: domain.AuthenticatedAdmin, identity: adminIdentity()}
	rec, called := invokeGate(t, auth, "/admin")

	if !called {
		t.Fatal("admin must reach the page")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// Pages never answer 401; anything below admin is sent to the login page.
func TestAdminPageGate_RedirectsBelowAdmin(t *testing.T) {
	cases := []struct {
		name string
		auth *stubAuthenticator
	}{
		{"unauthenticated visitor", &stubAuthenticator{state: domain.Unauthenticated}},
		{"standard session", &stubAuthenticator{state: domain.AuthenticatedStandard, identity: standardIdentity()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, called := invokeGate(t, tc.auth, "/admin")
			if called {
				t.Fatal("page must not render")
			}
			if rec.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != loginPath {
				t.Errorf("Location = %q, want %q", got, loginPath)
			}
		})
	}
}

// The login page is reachable without a session, so the redirect target can
// never itself redirect.
func TestAdminPageGate_LoginPageNeverLoops(t *testing.T) {
	auth := &stubAuthenticator{state: domain.Unauthenticated}
	rec, called := invokeGate(t, auth, loginPath)

	if !called {
		t.Fatal("login page must render for anonymous visitors")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

type failingMembership struct{}

func (failingMembership) IsAdmin(_ context.Context, _ string) (bool, error) {
	return false, errors.New("query timeout")
}

type fixedSessionProvider struct{}

func (fixedSessionProvider) SignIn(_ context.Context, _, _ string) (*ports.HostedSession, error) {
	return nil, domain.ErrUnauthorized
}

func (fixedSessionProvider) ResolveSession(_ context.Context, _ string) (*domain.Session, error) {
	return &domain.Session{SubjectID: "s1", Email: "admin@example.com"}, nil
}

func (fixedSessionProvider) SignOut(_ context.Context, _ string) error { return nil }

// A valid session whose membership lookup fails is treated exactly like no
// session: redirect, not a rendered page and not an error response.
func TestAdminPageGate_MembershipFailureRedirects(t *testing.T) {
	auth := service.NewCookieAuthenticator(fixedSessionProvider{}, failingMembership{}, zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessTokenCookie, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AdminPageGate(auth, loginPath)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if called {
		t.Fatal("page must not render when privilege is unknown")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != loginPath {
		t.Errorf("Location = %q, want %q", got, loginPath)
	}
}
