package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/haryawn/law-firm-api/internal/api/metrics"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
)

// rateLimitedResponse is the body of every 429.
type rateLimitedResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// RateLimit bounds mutating requests per client identifier using the given
// fixed-window policy. Admitted requests carry X-RateLimit-* headers;
// rejected ones get a 429 with a retry hint in seconds.
func RateLimit(store ports.RateLimitStore, route string, policy domain.RateLimitPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := clientIdentifier(c.Request())

			decision, err := store.Take(c.Request().Context(), route+":"+id, policy)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "rate limit check failed").SetInternal(err)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.UnixMilli(), 10))

			if !decision.Allowed {
				metrics.RateLimitDecisionsTotal.WithLabelValues(route, "rejected").Inc()
				retry := decision.RetryAfterSeconds()
				h.Set("Retry-After", strconv.Itoa(retry))
				return c.JSON(http.StatusTooManyRequests, rateLimitedResponse{
					Error:      "Too many requests",
					RetryAfter: retry,
				})
			}

			metrics.RateLimitDecisionsTotal.WithLabelValues(route, "admitted").Inc()
			return next(c)
		}
	}
}

// clientIdentifier derives the rate-limit key for a request: the first
// forwarded address, then the transport peer address, then a sentinel.
func clientIdentifier(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}

	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return real
	}

	if r.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}

	return "unknown"
}
