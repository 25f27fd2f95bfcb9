package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown email and wrong
	// password are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by lookups that miss. When it escapes the
	// bearer filter it maps to the generic error path, never to 401.
	ErrUserNotFound = errors.New("user not found")

	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)

// DuplicateEmailError reports a uniqueness violation on the email column.
// It carries the offending email so the HTTP boundary can build the message;
// email is the sole unique field, so reconstructing it from the request value
// is safe.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %s already registered", e.Email)
}
