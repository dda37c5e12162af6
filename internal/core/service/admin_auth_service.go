package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/haryawn/law-firm-api/internal/api/metrics"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// AdminAuthService implements the back-office login flow: a password grant
// against the hosted identity provider followed by an admin membership
// check. Every failure collapses to ErrUnauthorized so callers cannot tell
// a wrong password from a non-member account.
type AdminAuthService struct {
	provider   ports.IdentityProvider
	membership ports.MembershipStore
	log        zerolog.Logger
}

func NewAdminAuthService(provider ports.IdentityProvider, membership ports.MembershipStore, log zerolog.Logger) *AdminAuthService {
	return &AdminAuthService{provider: provider, membership: membership, log: log}
}

func (s *AdminAuthService) Login(ctx context.Context, email, password string) (*ports.HostedSession, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		metrics.AdminLoginsTotal.WithLabelValues("denied").Inc()
		s.log.Warn().Err(err).Str("email", email).Msg("admin sign-in failed")
		return nil, domain.ErrUnauthorized
	}

	admin, err := s.membership.IsAdmin(ctx, session.Session.SubjectID)
	if err != nil {
		metrics.AdminLoginsTotal.WithLabelValues("denied").Inc()
		s.log.Error().Err(err).Str("subject", session.Session.SubjectID).Msg("admin membership lookup failed")
		return nil, domain.ErrUnauthorized
	}
	if !admin {
		metrics.AdminLoginsTotal.WithLabelValues("denied").Inc()
		s.log.Warn().Str("subject", session.Session.SubjectID).Msg("sign-in by non-admin account")
		return nil, domain.ErrUnauthorized
	}

	metrics.AdminLoginsTotal.WithLabelValues("granted").Inc()
	s.log.Info().Str("subject", session.Session.SubjectID).Msg("admin access verified")
	session.Session.Role = domain.RoleAdmin
	return session, nil
}

func (s *AdminAuthService) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		// Cookies are cleared regardless; revocation is best effort.
		s.log.Warn().Err(err).Msg("provider sign-out failed")
	}
}
