package service

import (
	"context"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// StatsService aggregates the dashboard counts across the lead stores.
type StatsService struct {
	appointments ports.AppointmentRepository
	subscribers  ports.SubscriberRepository
	contacts     ports.ContactRepository
}

func NewStatsService(appointments ports.AppointmentRepository, subscribers ports.SubscriberRepository, contacts ports.ContactRepository) *StatsService {
	return &StatsService{appointments: appointments, subscribers: subscribers, contacts: contacts}
}

func (s *StatsService) Dashboard(ctx context.Context) (ports.DashboardStats, error) {
	var stats ports.DashboardStats
	var err error

	if stats.TotalAppointments, err = s.appointments.Count(ctx); err != nil {
		return ports.DashboardStats{}, err
	}
	if stats.PendingAppointments, err = s.appointments.CountByStatus(ctx, domain.AppointmentPending); err != nil {
		return ports.DashboardStats{}, err
	}
	if stats.TotalSubscribers, err = s.subscribers.Count(ctx); err != nil {
		return ports.DashboardStats{}, err
	}
	if stats.TotalMessages, err = s.contacts.Count(ctx); err != nil {
		return ports.DashboardStats{}, err
	}

	return stats, nil
}
