package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/api/middleware"
)

// PageHandler serves the minimal back-office pages. The real dashboard UI
// is rendered client-side; these routes exist so the page gate has
// navigable targets.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// LoginPage is reachable in every authentication state.
func (h *PageHandler) LoginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html><head><title>Admin Login - Haryawn Law Firm</title></head>
<body><h1>Admin Login</h1><form id="login" method="post" action="/api/admin/login"></form></body></html>`)
}

// Dashboard is only reachable through the admin page gate.
func (h *PageHandler) Dashboard(c echo.Context) error {
	email, _ := c.Get(middleware.CtxEmail).(string)
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html><head><title>Admin Dashboard - Haryawn Law Firm</title></head>
<body><h1>Dashboard</h1><p>Signed in as `+email+`</p></body></html>`)
}
