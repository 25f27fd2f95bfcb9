package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sfpacim/finance-api/internal/api/metrics"
	"github.com/sfpacim/finance-api/internal/core/domain"
	"github.com/sfpacim/finance-api/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per email. Implementations are
// expected to fail open: a throttle outage must never block logins.
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	Fail(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type AuthHandler struct {
	authService ports.AuthService
	events      ports.AuthEventSink
	throttle    LoginThrottle
	log         zerolog.Logger
}

// NewAuthHandler builds the handler for the public /autenticacao routes.
// events and throttle may be nil; both features are then skipped.
func NewAuthHandler(authService ports.AuthService, events ports.AuthEventSink, throttle LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, events: events, throttle: throttle, log: log}
}

type cadastroRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,senha"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Cadastro creates a new user account.
//
// @Summary      Cadastra um novo usuário
// @Tags         autenticacao
// @Accept       json
// @Produce      json
// @Param        body  body      cadastroRequest  true  "Dados de cadastro"
// @Success      201   {object}  domain.PublicView
// @Header       201   {string}  Location  "URL do novo recurso criado"
// @Failure      400   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /autenticacao/cadastro [post]
func (h *AuthHandler) Cadastro(c echo.Context) error {
	var req cadastroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		return err
	}

	h.record(c, user.Email, domain.EventUserRegistered)

	c.Response().Header().Set(echo.HeaderLocation, "/usuarios/"+user.ID)
	return c.JSON(http.StatusCreated, user.Public())
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Autentica um usuário
// @Tags         autenticacao
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciais de acesso"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /autenticacao/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		blocked, err := h.throttle.TooMany(ctx, req.Email)
		if err != nil {
			// Fail open: redis being down must not lock everyone out.
			h.log.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			metrics.LoginThrottleRejectionsTotal.Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "Muitas tentativas de login. Tente novamente mais tarde.")
		}
	}

	token, err := h.authService.Login(ctx, req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.record(c, req.Email, domain.EventLoginFailed)
			if h.throttle != nil {
				if terr := h.throttle.Fail(ctx, req.Email); terr != nil {
					h.log.Warn().Err(terr).Msg("login throttle update failed")
				}
			}
		}
		return err
	}

	h.record(c, req.Email, domain.EventLoginOK)
	if h.throttle != nil {
		if terr := h.throttle.Reset(ctx, req.Email); terr != nil {
			h.log.Warn().Err(terr).Msg("login throttle reset failed")
		}
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (h *AuthHandler) record(c echo.Context, email string, kind domain.AuthEventKind) {
	if h.events == nil {
		return
	}
	h.events.Enqueue(domain.AuthEvent{
		Email:     email,
		Kind:      kind,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
}
