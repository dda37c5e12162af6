package ports

import (
	"context"
	"time"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// AppointmentInput carries a validated booking-form submission.
type AppointmentInput struct {
	Name         string
	Email        string
	Phone        string
	Date         time.Time
	Time         string
	PracticeArea string
	Notes        string
}

// AppointmentService handles booking submissions and back-office review.
type AppointmentService interface {
	Book(ctx context.Context, in AppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// ContactInput carries a validated contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactService handles contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
}

// SubscriberService handles newsletter subscriptions.
type SubscriberService interface {
	Subscribe(ctx context.Context, name, email string) (*domain.Subscriber, error)
}

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	TotalAppointments   int64 `json:"totalAppointments"`
	PendingAppointments int64 `json:"pendingAppointments"`
	TotalSubscribers    int64 `json:"totalSubscribers"`
	TotalMessages       int64 `json:"totalMessages"`
}

// StatsService aggregates dashboard counts across the lead stores.
type StatsService interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
}
