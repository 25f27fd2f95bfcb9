package ports

// TokenService creates and verifies the compact signed tokens that represent a
// logged-in session.
type TokenService interface {
	// Issue builds a signed token whose subject is the given string.
	Issue(subject string) (string, error)
	// Validate checks signature and expiry and returns the embedded subject.
	// Failures are domain.ErrTokenExpired, domain.ErrTokenSignatureInvalid or
	// domain.ErrTokenMalformed.
	Validate(token string) (string, error)
}
