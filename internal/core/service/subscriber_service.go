package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/haryawn/law-firm-api/internal/api/metrics"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// SubscriberService implements newsletter subscription.
type SubscriberService struct {
	repo     ports.SubscriberRepository
	dedup    ports.SubscribeDeduper
	notifier ports.Notifier
	notifyTo string
	log      zerolog.Logger
}

func NewSubscriberService(repo ports.SubscriberRepository, dedup ports.SubscribeDeduper, notifier ports.Notifier, notifyTo string, log zerolog.Logger) *SubscriberService {
	return &SubscriberService{repo: repo, dedup: dedup, notifier: notifier, notifyTo: notifyTo, log: log}
}

func (s *SubscriberService) Subscribe(ctx context.Context, name, email string) (*domain.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.dedup != nil {
		seen, err := s.dedup.Seen(ctx, email)
		if err != nil {
			// The dedup cache is advisory; fall through to the unique index.
			s.log.Warn().Err(err).Msg("subscribe dedup check failed")
		} else if seen {
			return nil, domain.ErrAlreadySubscribed
		}
	}

	sub := &domain.Subscriber{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("subscribe dedup mark failed")
		}
	}

	metrics.SubscriptionsTotal.Inc()
	s.log.Info().Str("subscriber_id", created.ID).Msg("newsletter subscription created")

	s.notifier.Enqueue(ports.Notification{
		To:      created.Email,
		Subject: "Welcome to Our Newsletter!",
		HTML: fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Thank you for subscribing, %s!</h2>
<p>We're excited to have you join our newsletter. You'll now receive updates about:</p>
<ul>
<li>Latest legal developments</li>
<li>Firm news and announcements</li>
<li>Industry insights</li>
<li>Event invitations</li>
</ul>
<p>Best regards,<br>Your Legal Team</p>
</div>`, created.Name),
	})
	if s.notifyTo != "" {
		s.notifier.Enqueue(ports.Notification{
			To:      s.notifyTo,
			Subject: "New Newsletter Subscription",
			HTML:    fmt.Sprintf("<h2>New Newsletter Subscription</h2><p><strong>Email:</strong> %s</p>", created.Email),
		})
	}

	return created, nil
}
