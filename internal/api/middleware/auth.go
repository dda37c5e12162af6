package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/api/metrics"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// Context keys set by the authentication middleware.
const (
	CtxSubjectID = "subject_id"
	CtxEmail     = "email"
	CtxRole      = "role"
)

// RequireAuth admits any authenticated request and injects the resolved
// identity into the echo context. Unauthenticated requests get a 401; a
// role check, where needed, is the endpoint's own responsibility.
func RequireAuth(auth ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, identity := auth.Authenticate(c.Request().Context(), c.Request())
			metrics.AuthDecisionsTotal.WithLabelValues("api", state.String()).Inc()

			if state == domain.Unauthenticated {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
			}

			c.Set(CtxSubjectID, identity.SubjectID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}

// RequireAdmin admits only requests whose session subject holds admin
// membership. Anything below admin, including collaborator failures, gets
// an identical 401 so callers cannot probe for account existence.
func RequireAdmin(auth ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, identity := auth.Authenticate(c.Request().Context(), c.Request())
			metrics.AuthDecisionsTotal.WithLabelValues("api", state.String()).Inc()

			if state != domain.AuthenticatedAdmin {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			}

			c.Set(CtxSubjectID, identity.SubjectID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}
