package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/api/metrics"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// AdminPageGate protects admin page navigation. The login page itself is
// always allowed so the redirect can never loop; every other page under
// the gate requires an admin session. Standard users, unauthenticated
// visitors, and any internal authenticator failure all redirect to the
// login page.
func AdminPageGate(auth ports.Authenticator, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == loginPath {
				return next(c)
			}

			state, identity := auth.Authenticate(c.Request().Context(), c.Request())
			metrics.AuthDecisionsTotal.WithLabelValues("page", state.String()).Inc()

			if state != domain.AuthenticatedAdmin {
				return c.Redirect(http.StatusFound, loginPath)
			}

			c.Set(CtxSubjectID, identity.SubjectID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}
