package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/haryawn/law-firm-api/internal/api/metrics"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// ContactService implements contact-form submissions.
type ContactService struct {
	repo     ports.ContactRepository
	notifier ports.Notifier
	notifyTo string
	log      zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, notifier ports.Notifier, notifyTo string, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, notifyTo: notifyTo, log: log}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.ContactPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	metrics.ContactMessagesTotal.Inc()
	s.log.Info().Str("message_id", created.ID).Str("email", created.Email).Msg("contact message created")

	if s.notifyTo != "" {
		s.notifier.Enqueue(ports.Notification{
			To:      s.notifyTo,
			Subject: "New Contact Message: " + created.Subject,
			HTML: fmt.Sprintf(`<h2>New Contact Message</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p>%s</p>`, created.Name, created.Email, created.Subject, created.Message),
		})
	}

	return created, nil
}
