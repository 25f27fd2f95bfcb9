package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single (campo, mensagem) validation failure, serialized as
// part of the 422 response body.
type FieldError struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// ValidationError carries the full list of field failures for one request.
// The central error handler renders it as HTTP 422.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Campo+": "+f.Mensagem)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// It registers the custom "senha" rule for password complexity.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("senha", validSenha)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldError(fe))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// validSenha enforces the password rule: at least 8 characters with at least
// one uppercase letter, one lowercase letter and one digit.
func validSenha(fl validator.FieldLevel) bool {
	senha := fl.Field().String()
	if len(senha) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range senha {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// fieldError converts a single ValidationError into the pt-BR field message.
func fieldError(fe validator.FieldError) FieldError {
	campo := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return FieldError{campo, fmt.Sprintf("O campo %s é obrigatório.", campo)}
	case "email":
		return FieldError{campo, "O formato do e-mail é inválido."}
	case "senha":
		return FieldError{campo, "A senha deve ter no mínimo 8 caracteres, contendo ao menos uma letra maiúscula, uma minúscula e um número."}
	default:
		return FieldError{campo, fmt.Sprintf("O campo %s é inválido.", campo)}
	}
}
