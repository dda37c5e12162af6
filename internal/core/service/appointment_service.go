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

const adminListLimit = 50

// maxBookingHorizon is how far ahead a consultation may be booked.
const maxBookingHorizon = 3 * 31 * 24 * time.Hour

// AppointmentService implements consultation booking and back-office review.
type AppointmentService struct {
	repo     ports.AppointmentRepository
	notifier ports.Notifier
	notifyTo string
	now      func() time.Time
	log      zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, notifier ports.Notifier, notifyTo string, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		repo:     repo,
		notifier: notifier,
		notifyTo: notifyTo,
		now:      time.Now,
		log:      log,
	}
}

func (s *AppointmentService) Book(ctx context.Context, in ports.AppointmentInput) (*domain.Appointment, error) {
	if msgs := s.bookingViolations(in); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs}
	}

	now := s.now().UTC()
	appt := &domain.Appointment{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Date:         in.Date,
		Time:         in.Time,
		PracticeArea: in.PracticeArea,
		Notes:        in.Notes,
		Status:       domain.AppointmentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	metrics.AppointmentsBookedTotal.WithLabelValues(created.PracticeArea).Inc()
	s.log.Info().
		Str("appointment_id", created.ID).
		Str("practice_area", created.PracticeArea).
		Time("date", created.Date).
		Msg("appointment booked")

	// Confirmation and staff notification are best effort; a mail failure
	// never fails the booking.
	s.notifier.Enqueue(ports.Notification{
		To:      created.Email,
		Subject: "Consultation Booking Confirmation - Haryawn Law Firm",
		HTML:    confirmationBody(created),
	})
	if s.notifyTo != "" {
		s.notifier.Enqueue(ports.Notification{
			To:      s.notifyTo,
			Subject: "New Appointment Request",
			HTML:    staffNotificationBody(created),
		})
	}

	return created, nil
}

// bookingViolations applies the business rules the booking form enforces
// beyond field shape: the slot must be offered, the practice area known,
// and the date a future weekday within the booking horizon.
func (s *AppointmentService) bookingViolations(in ports.AppointmentInput) []string {
	var msgs []string

	if !domain.ValidTimeSlot(in.Time) {
		msgs = append(msgs, "Please select a valid appointment time")
	}
	if !domain.ValidPracticeArea(in.PracticeArea) {
		msgs = append(msgs, "Please select a valid practice area")
	}

	now := s.now()
	if !in.Date.After(now) {
		msgs = append(msgs, "Appointment must be scheduled for a future date and time")
	}
	switch in.Date.Weekday() {
	case time.Saturday, time.Sunday:
		msgs = append(msgs, "Appointments are not available on weekends")
	}
	if in.Date.After(now.Add(maxBookingHorizon)) {
		msgs = append(msgs, "Appointments can only be booked up to three months in advance")
	}

	return msgs
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.List(ctx, adminListLimit)
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !domain.ValidAppointmentStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func confirmationBody(a *domain.Appointment) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Consultation Booking Confirmation</h2>
<p>Dear %s,</p>
<p>Thank you for booking a consultation with Haryawn Law Firm. Here are your booking details:</p>
<p><strong>Date:</strong> %s<br>
<strong>Time:</strong> %s<br>
<strong>Practice Area:</strong> %s</p>
<p>Our team will review your booking and contact you within 24 hours to confirm your appointment.</p>
<p>Best regards,<br>Haryawn Law Firm</p>
</div>`,
		a.Name,
		a.Date.Format("Monday, January 2, 2006"),
		a.Time,
		a.PracticeArea,
	)
}

func staffNotificationBody(a *domain.Appointment) string {
	phone := a.Phone
	if phone == "" {
		phone = "Not provided"
	}
	notes := a.Notes
	if notes == "" {
		notes = "No message provided"
	}
	return fmt.Sprintf(`<h2>New Appointment Request</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Practice Area:</strong> %s</p>
<p><strong>Message:</strong> %s</p>`,
		a.Name, a.Email, phone, a.Date.Format("2006-01-02"), a.Time, a.PracticeArea, notes,
	)
}
