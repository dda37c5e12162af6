package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

type AppointmentHandler struct {
	appointmentService ports.AppointmentService
}

func NewAppointmentHandler(appointmentService ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Book accepts a consultation booking request.
//
// @Summary      Book a consultation
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      appointmentRequest  true  "Booking form fields"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  validationResponse
// @Failure      429   {object}  map[string]string
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse{Errors: []string{err.Error()}})
	}

	when, err := combineDateSlot(req.Date, req.Time)
	if err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse{
			Errors: []string{"Please select a valid appointment date and time"},
		})
	}

	appt, err := h.appointmentService.Book(c.Request().Context(), ports.AppointmentInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Date:         when,
		Time:         req.Time,
		PracticeArea: req.PracticeArea,
		Notes:        req.Notes,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationResponse{Errors: ve.Messages})
		}
		return err
	}

	return c.JSON(http.StatusOK, appointmentResponse{
		Message: "Appointment scheduled successfully",
		ID:      appt.ID,
	})
}

// combineDateSlot merges the date field with the chosen slot into one
// timestamp, e.g. "2026-09-14" + "02:00 PM".
func combineDateSlot(date, slot string) (time.Time, error) {
	return time.Parse("2006-01-02 03:04 PM", date+" "+slot)
}
