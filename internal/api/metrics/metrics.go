// Package metrics defines and registers all custom Prometheus metrics for
// the law-firm site backend. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at package init; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lawfirm"

// ── Request admission ─────────────────────────────────────────────────────────

// RateLimitDecisionsTotal counts rate-limiter outcomes.
// Labels:
//   - route: the route group the policy applies to (e.g. "contact")
//   - result: "admitted" or "rejected"
var RateLimitDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratelimit_decisions_total",
		Help:      "Total number of rate limiter decisions, by route and result.",
	},
	[]string{"route", "result"},
)

// AuthDecisionsTotal counts authentication gate outcomes.
// Labels:
//   - gate: "api" or "page"
//   - state: "unauthenticated", "authenticated", or "admin"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of authentication gate decisions, by gate and resolved state.",
	},
	[]string{"gate", "state"},
)

// AdminLoginsTotal counts back-office login attempts.
// Label:
//   - result: "granted" or "denied"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ── Lead generation ───────────────────────────────────────────────────────────

// AppointmentsBookedTotal counts accepted consultation bookings.
// Label:
//   - practice_area: the practice area the consultation was booked for
var AppointmentsBookedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of consultation bookings accepted, by practice area.",
	},
	[]string{"practice_area"},
)

// ContactMessagesTotal counts accepted contact-form messages.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages accepted.",
	},
)

// SubscriptionsTotal counts accepted newsletter subscriptions.
var SubscriptionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscriptions_total",
		Help:      "Total number of newsletter subscriptions accepted.",
	},
)

// ── Notifications ─────────────────────────────────────────────────────────────

// MailSendTotal counts outbound notification deliveries.
// Label:
//   - result: "sent" or "failed"
var MailSendTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_send_total",
		Help:      "Total number of outbound notification emails, by result.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks notifications waiting in each dispatcher worker.
// Label:
//   - worker_id: numeric worker index
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
