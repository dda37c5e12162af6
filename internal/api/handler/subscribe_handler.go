package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/core/ports"
)

type SubscribeHandler struct {
	subscriberService ports.SubscriberService
}

func NewSubscribeHandler(subscriberService ports.SubscriberService) *SubscribeHandler {
	return &SubscribeHandler{subscriberService: subscriberService}
}

// Subscribe adds an email address to the newsletter.
//
// @Summary      Subscribe to the newsletter
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "Subscription fields"
// @Success      200   {object}  subscribeResponse
// @Failure      400   {object}  validationResponse
// @Failure      409   {object}  map[string]string
// @Router       /api/subscribe [post]
func (h *SubscribeHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse{Errors: []string{err.Error()}})
	}

	if _, err := h.subscriberService.Subscribe(c.Request().Context(), req.Name, req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, subscribeResponse{
		Success: true,
		Message: "Successfully subscribed to the newsletter",
	})
}
