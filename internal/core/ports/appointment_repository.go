package ports

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

// AppointmentRepository defines persistence for consultation requests.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, limit int64) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error)
}
