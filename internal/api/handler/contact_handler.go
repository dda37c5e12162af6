package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/core/ports"
)

type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit accepts a contact-form message.
//
// @Summary      Submit a contact message
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form fields"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  validationResponse
// @Failure      429   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse{Errors: []string{err.Error()}})
	}

	msg, err := h.contactService.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contactResponse{
		Message: "Contact message received successfully",
		ID:      msg.ID,
	})
}
