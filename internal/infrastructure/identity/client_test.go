package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
}

func TestClient_SignIn(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("grant_type = %q", r.URL.Query().Get("grant_type"))
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey header = %q", r.Header.Get("apikey"))
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "admin@example.com" {
			t.Errorf("email = %q", body["email"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at-1",
			"refresh_token": "rt-1",
			"expires_in":    3600,
			"user": map[string]string{
				"id":    "s1",
				"email": "admin@example.com",
				"role":  "authenticated",
			},
		})
	})

	session, err := client.SignIn(context.Background(), "admin@example.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.AccessToken != "at-1" || session.RefreshToken != "rt-1" {
		t.Errorf("token pair = %q / %q", session.AccessToken, session.RefreshToken)
	}
	if session.Session.SubjectID != "s1" {
		t.Errorf("subject = %q", session.Session.SubjectID)
	}
	if session.Session.ExpiresAt.Before(session.Session.IssuedAt) {
		t.Error("expiry must be after issue time")
	}
}

func TestClient_SignIn_BadCredentials(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.SignIn(context.Background(), "a@b.c", "wrong")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("status %d: expected ErrInvalidCredentials, got %v", status, err)
		}
	}
}

func TestClient_SignIn_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.SignIn(context.Background(), "a@b.c", "pw")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected a transport-level error, got %v", err)
	}
}

func TestClient_ResolveSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer at-1" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":    "s1",
			"email": "admin@example.com",
		})
	})

	session, err := client.ResolveSession(context.Background(), "at-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.SubjectID != "s1" || session.Email != "admin@example.com" {
		t.Errorf("session = %+v", session)
	}
}

func TestClient_ResolveSession_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.ResolveSession(context.Background(), "stale")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("status %d: expected ErrUnauthorized, got %v", status, err)
		}
	}
}

// A 200 without a subject id is treated as an invalid session, not a crash
// or a pass.
func TestClient_ResolveSession_EmptySubject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	_, err := client.ResolveSession(context.Background(), "at-1")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_SignOut(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.SignOut(context.Background(), "at-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/auth/v1/logout" {
		t.Errorf("path = %q", path)
	}
}

// Revoking an already-dead token is not an error worth surfacing.
func TestClient_SignOut_AlreadyRevoked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if err := client.SignOut(context.Background(), "stale"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
