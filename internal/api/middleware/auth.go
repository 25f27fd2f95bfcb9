package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sfpacim/finance-api/internal/api/metrics"
	"github.com/sfpacim/finance-api/internal/core/domain"
	"github.com/sfpacim/finance-api/internal/core/ports"
)

const bearerPrefix = "Bearer "

// Auth is the per-request bearer filter. It runs on every route, ahead of any
// credential check:
//
//   - No Authorization header, or one without the "Bearer " prefix: the
//     request proceeds anonymous; RequireAuth rejects it later if the route
//     is protected.
//   - Token present: it is validated and the subject resolved against the
//     user store. A validation failure is terminal (401 via the central
//     error handler). A subject with no matching account is a server-side
//     inconsistency and takes the generic error path, not 401.
//
// On success the resolved principal is attached to the request-scoped context
// under the "principal" key.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				return next(c)
			}

			subject, err := tokens.Validate(strings.TrimPrefix(authHeader, bearerPrefix))
			metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
			if err != nil {
				return err
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				return fmt.Errorf("resolve principal %q: %w", subject, err)
			}

			c.Set("principal", user)
			return next(c)
		}
	}
}

func validationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
