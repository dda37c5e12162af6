package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/api/middleware"
)

// ctxSubject extracts the authenticated subject injected by the auth
// middleware and fast-fails before any service call: a non-empty subject id
// proves the middleware ran.
func ctxSubject(c echo.Context) (subjectID string, err error) {
	subjectID, _ = c.Get(middleware.CtxSubjectID).(string)
	if subjectID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subjectID, nil
}
