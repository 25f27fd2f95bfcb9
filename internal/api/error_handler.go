package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sfpacim/finance-api/internal/api/handler"
	"github.com/sfpacim/finance-api/internal/core/domain"
)

// dataHoraFormat is the timestamp layout of every error body (dd/MM/yyyy HH:mm).
const dataHoraFormat = "02/01/2006 15:04"

// erroPadrao is the canonical error envelope for all API errors.
type erroPadrao struct {
	Status   int    `json:"status"`
	Titulo   string `json:"titulo"`
	Mensagem string `json:"mensagem"`
	DataHora string `json:"dataHora"`
	Rota     string `json:"rota"`
}

// erroValidacao is the 422 envelope: the standard error plus the per-field list.
type erroValidacao struct {
	Erro  erroPadrao           `json:"erro"`
	Erros []handler.FieldError `json:"erros"`
}

func newErroPadrao(status int, titulo, mensagem, rota string) erroPadrao {
	return erroPadrao{
		Status:   status,
		Titulo:   titulo,
		Mensagem: mensagem,
		DataHora: time.Now().Format(dataHoraFormat),
		Rota:     rota,
	}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders field-validation failures as 422 with the (campo, mensagem) list.
//   - Maps known domain errors to their HTTP status codes; credential and
//     token failures collapse into a uniform 401, never revealing which
//     internal check failed.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		rota := c.Request().URL.Path

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			body := erroValidacao{
				Erro:  newErroPadrao(http.StatusUnprocessableEntity, "Erro de Validação", "Um ou mais campos estão inválidos.", rota),
				Erros: ve.Fields,
			}
			_ = c.JSON(http.StatusUnprocessableEntity, body)
			return
		}

		code, titulo, msg := resolveError(err, log, c)
		_ = c.JSON(code, newErroPadrao(code, titulo, msg, rota))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bad request bodies, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, tituloForCode(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	var dup *domain.DuplicateEmailError
	switch {
	case errors.As(err, &dup):
		return http.StatusBadRequest, "Violação de Dados", fmt.Sprintf("O e-mail: %s já está cadastrado.", dup.Email)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Não Autorizado", "Credenciais inválidas."
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenSignatureInvalid),
		errors.Is(err, domain.ErrTokenMalformed):
		return http.StatusUnauthorized, "Não Autorizado", "Token inválido ou expirado."
	}

	// Unexpected error (including an unknown token subject escaping the
	// bearer filter): log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro Interno", "Ocorreu um erro inesperado no servidor. Tente novamente mais tarde."
}

func tituloForCode(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "Requisição Inválida"
	case http.StatusUnauthorized:
		return "Não Autorizado"
	case http.StatusForbidden:
		return "Acesso Negado"
	case http.StatusNotFound:
		return "Não Encontrado"
	case http.StatusTooManyRequests:
		return "Muitas Requisições"
	default:
		return "Erro"
	}
}
