package domain

import "time"

// AppointmentStatus represents the review state of a consultation request.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is a status the back office may set.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return true
	}
	return false
}

// TimeSlots are the consultation slots offered on the booking form.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM",
	"02:00 PM", "03:00 PM", "04:00 PM",
}

// PracticeAreas are the practice areas a consultation can be booked for.
var PracticeAreas = []string{
	"Corporate Law",
	"Intellectual Property",
	"Employment Law",
	"Real Estate",
	"Litigation",
	"Family Law",
	"Criminal Defense",
	"Immigration",
	"Other",
}

// ValidTimeSlot reports whether t is one of the offered slots.
func ValidTimeSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// ValidPracticeArea reports whether a is a practice area the firm offers.
func ValidPracticeArea(a string) bool {
	for _, p := range PracticeAreas {
		if p == a {
			return true
		}
	}
	return false
}

// Appointment is a consultation request submitted through the booking form.
type Appointment struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone,omitempty"`
	Date         time.Time         `json:"date"`
	Time         string            `json:"time"`
	PracticeArea string            `json:"practice_area"`
	Notes        string            `json:"notes,omitempty"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
