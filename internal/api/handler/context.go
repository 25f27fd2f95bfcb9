package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

// PrincipalFrom extracts the authenticated principal injected by the Auth
// middleware. Presence proves the bearer filter resolved a real account;
// absence on a protected route means RequireAuth was not applied.
func PrincipalFrom(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("principal").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Autenticação necessária.")
	}
	return user, nil
}
