package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sfpacim/finance-api/internal/core/domain"
	"github.com/sfpacim/finance-api/internal/core/ports"
)

// UserHandler serves the protected user-facing routes.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Ola is the authenticated smoke-test endpoint.
//
// @Summary      Olá Mundo
// @Tags         usuarios
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string  "Olá Mundo!"
// @Router       /ola [get]
func (h *UserHandler) Ola(c echo.Context) error {
	return c.String(http.StatusOK, "Olá Mundo!")
}

// Me returns the public view of the authenticated account.
//
// @Summary      Retorna o usuário autenticado
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PublicView
// @Router       /usuarios/eu [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}

// GetByID returns the public view of a user, the resource pointed at by the
// Location header of the cadastro response.
//
// @Summary      Busca um usuário por ID
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  domain.PublicView
// @Failure      404  {object}  map[string]any
// @Router       /usuarios/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.users.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Usuário não encontrado.")
		}
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}
