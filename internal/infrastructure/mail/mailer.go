// Package mail delivers outbound notifications over SMTP.
package mail

import (
	"time"

	"gopkg.in/gomail.v2"

	"github.com/haryawn/law-firm-api/internal/api/metrics"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

const (
	defaultRetries = 3
	initialBackoff = 100 * time.Millisecond
	maxBackoff     = 30 * time.Second
)

// Config captures the SMTP settings. An empty Host disables delivery.
type Config struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	SenderName string
}

// Mailer sends notifications through an SMTP relay with bounded retries.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	senderName string
	retries    int
}

var _ ports.Mailer = (*Mailer)(nil)

func NewMailer(cfg Config) *Mailer {
	senderName := cfg.SenderName
	if senderName == "" {
		senderName = "Haryawn Law Firm"
	}
	return &Mailer{
		dialer:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:       cfg.From,
		senderName: senderName,
		retries:    defaultRetries,
	}
}

func (m *Mailer) Send(n ports.Notification) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.senderName)
	msg.SetHeader("To", n.To)
	msg.SetHeader("Subject", n.Subject)
	msg.SetBody("text/html", n.HTML)

	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt <= m.retries; attempt++ {
		if err := m.dialer.DialAndSend(msg); err == nil {
			metrics.MailSendTotal.WithLabelValues("sent").Inc()
			return nil
		} else {
			lastErr = err
		}
		if attempt < m.retries {
			time.Sleep(backoff)
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}

	metrics.MailSendTotal.WithLabelValues("failed").Inc()
	return lastErr
}

// NoopMailer discards notifications. Used when SMTP is not configured so
// form submissions still succeed in environments without a relay.
type NoopMailer struct{}

var _ ports.Mailer = NoopMailer{}

func (NoopMailer) Send(ports.Notification) error { return nil }
