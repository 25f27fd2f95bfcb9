package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

// RequireAuth rejects requests that reached a protected route without a
// principal. Every account carries the single USUARIO authority, so presence
// of the principal is the whole authorization check.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("principal").(*domain.User); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Autenticação necessária.")
			}
			return next(c)
		}
	}
}
