package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
	"github.com/haryawn/law-firm-api/internal/core/service"
)

const sessionCookieMaxAge = 86400

type adminLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type adminLoginResponse struct {
	Message string            `json:"message"`
	User    adminUserResponse `json:"user"`
}

type appointmentListResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
}

type appointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type AdminHandler struct {
	adminAuth          *service.AdminAuthService
	appointmentService ports.AppointmentService
	statsService       ports.StatsService
}

func NewAdminHandler(adminAuth *service.AdminAuthService, appointments ports.AppointmentService, stats ports.StatsService) *AdminHandler {
	return &AdminHandler{
		adminAuth:          adminAuth,
		appointmentService: appointments,
		statsService:       stats,
	}
}

// Login signs an administrator in and sets the session cookie pair.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Credentials"
// @Success      200   {object}  adminLoginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
	}

	session, err := h.adminAuth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized access"})
	}

	c.SetCookie(sessionCookie(service.AccessTokenCookie, session.AccessToken, sessionCookieMaxAge))
	c.SetCookie(sessionCookie(service.RefreshTokenCookie, session.RefreshToken, sessionCookieMaxAge))

	return c.JSON(http.StatusOK, adminLoginResponse{
		Message: "Login successful",
		User: adminUserResponse{
			ID:    session.Session.SubjectID,
			Email: session.Session.Email,
			Role:  domain.RoleAdmin,
		},
	})
}

// Logout clears the session cookie pair and revokes the provider session.
//
// @Summary      Admin logout
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/admin/logout [post]
func (h *AdminHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(service.AccessTokenCookie); err == nil {
		h.adminAuth.Logout(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(sessionCookie(service.AccessTokenCookie, "", -1))
	c.SetCookie(sessionCookie(service.RefreshTokenCookie, "", -1))

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// ListAppointments returns the most recent consultation requests.
//
// @Summary      List appointments
// @Tags         admin
// @Produce      json
// @Success      200  {object}  appointmentListResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/appointments [get]
func (h *AdminHandler) ListAppointments(c echo.Context) error {
	appts, err := h.appointmentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if appts == nil {
		appts = []domain.Appointment{}
	}
	return c.JSON(http.StatusOK, appointmentListResponse{Appointments: appts})
}

// UpdateAppointment changes the review status of one appointment.
//
// @Summary      Update appointment status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      appointmentStatusRequest  true  "New status"
// @Success      200   {object}  map[string]domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/appointments/{id} [patch]
func (h *AdminHandler) UpdateAppointment(c echo.Context) error {
	var req appointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid status"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid status"})
	}

	appt, err := h.appointmentService.UpdateStatus(c.Request().Context(), c.Param("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]*domain.Appointment{"appointment": appt})
}

// Stats returns the dashboard aggregate counts.
//
// @Summary      Dashboard stats
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// sessionCookie builds one HTTP-only session cookie. maxAge < 0 expires the
// cookie immediately (logout).
func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}
