package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

// tokenIssuer is the fixed "iss" claim stamped on every token.
const tokenIssuer = "SFP-ACIM API"

// minSecretLen is the minimum HMAC key size (256 bits) accepted for HS256.
const minSecretLen = 32

// TokenService issues and validates the signed JWTs that represent a session.
// Both operations are pure computations over the shared symmetric secret; the
// service holds no per-request state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService. The secret must be at least 256 bits;
// ttl is the token lifetime (expiry = issued-at + ttl).
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("token service: secret must be at least %d bytes, got %d", minSecretLen, len(secret))
	}
	if ttl <= 0 {
		return nil, errors.New("token service: expiration must be positive")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given subject (the account email).
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the embedded subject.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return "", mapTokenError(err)
	}

	return claims.Subject, nil
}

// mapTokenError collapses golang-jwt parse errors into the domain taxonomy.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	default:
		return domain.ErrTokenMalformed
	}
}
