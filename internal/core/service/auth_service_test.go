package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/infrastructure/memory"
)

func newAuthService() *AuthService {
	return NewAuthService(memory.NewUserRepository(), "test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	svc := newAuthService()

	token, user, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.ID == "" {
		t.Error("expected an assigned id")
	}
	if user.Role != domain.RoleClient {
		t.Errorf("role = %q, want default client", user.Role)
	}
	if user.PasswordHash == "s3cret" {
		t.Error("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService()

	if _, _, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "Ann Again", "ann@example.com", "other", "")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_RejectsEmptyFields(t *testing.T) {
	svc := newAuthService()

	for _, tc := range []struct{ name, email, password string }{
		{"", "a@b.c", "pw"},
		{"Ann", "", "pw"},
		{"Ann", "a@b.c", ""},
	} {
		if _, _, err := svc.Register(context.Background(), tc.name, tc.email, tc.password, ""); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("register(%q, %q, ...): expected ErrInvalidCredentials, got %v", tc.name, tc.email, err)
		}
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService()

	_, registered, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret", domain.RoleLawyer)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "ann@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("logged in as %q, registered as %q", user.ID, registered.ID)
	}

	// The issued token must verify against the same secret and carry the
	// account's identity.
	identity, ok := NewTokenAuthenticator("test-secret").Verify(token)
	if !ok {
		t.Fatal("issued token failed verification")
	}
	if identity.SubjectID != registered.ID {
		t.Errorf("subject = %q, want %q", identity.SubjectID, registered.ID)
	}
	if identity.Role != domain.RoleLawyer {
		t.Errorf("role = %q, want lawyer", identity.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService()

	if _, _, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := svc.Login(context.Background(), "ann@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_TokenExpiry(t *testing.T) {
	svc := NewAuthService(memory.NewUserRepository(), "test-secret", 30*24*time.Hour)

	token, _, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}

	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	if got := time.Duration(exp-iat) * time.Second; got != 30*24*time.Hour {
		t.Errorf("token lifetime = %v, want 720h", got)
	}
}

func TestAuthService_Profile(t *testing.T) {
	svc := newAuthService()

	_, registered, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Profile(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ann@example.com" {
		t.Errorf("email = %q", user.Email)
	}

	if _, err := svc.Profile(context.Background(), "404"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown id, got %v", err)
	}
	if _, err := svc.Profile(context.Background(), ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for empty id, got %v", err)
	}
}
