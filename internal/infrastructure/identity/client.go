// Package identity implements the hosted identity provider client used by
// the admin cookie flow. The provider speaks a GoTrue-style REST API:
// password grants on /auth/v1/token and token introspection on
// /auth/v1/user.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the provider endpoint settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client
}

var _ ports.IdentityProvider = (*Client)(nil)

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.APIKey)

	return &Client{http: c}
}

type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*ports.HostedSession, error) {
	var out tokenResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/auth/v1/token")
	if err != nil {
		return nil, fmt.Errorf("identity sign-in: %w", err)
	}
	if resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnauthorized {
		return nil, domain.ErrInvalidCredentials
	}
	if resp.IsError() {
		return nil, fmt.Errorf("identity sign-in: unexpected status %d", resp.StatusCode())
	}

	now := time.Now().UTC()
	return &ports.HostedSession{
		Session: domain.Session{
			SubjectID: out.User.ID,
			Email:     out.User.Email,
			Role:      out.User.Role,
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Duration(out.ExpiresIn) * time.Second),
		},
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	}, nil
}

func (c *Client) ResolveSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	var out userResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&out).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("identity session lookup: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, domain.ErrUnauthorized
	}
	if resp.IsError() {
		return nil, fmt.Errorf("identity session lookup: unexpected status %d", resp.StatusCode())
	}
	if out.ID == "" {
		return nil, domain.ErrUnauthorized
	}

	return &domain.Session{
		SubjectID: out.ID,
		Email:     out.Email,
		Role:      out.Role,
	}, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/auth/v1/logout")
	if err != nil {
		return fmt.Errorf("identity sign-out: %w", err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusUnauthorized {
		return fmt.Errorf("identity sign-out: unexpected status %d", resp.StatusCode())
	}
	return nil
}
