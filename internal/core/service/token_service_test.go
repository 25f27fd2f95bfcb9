package service

import (
	"errors"
	"testing"
	"time"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, ttl)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue("ana@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if subject != "ana@x.com" {
		t.Fatalf("expected subject ana@x.com, got %q", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService(t, time.Millisecond)

	token, err := svc.Issue("ana@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	time.Sleep(1100 * time.Millisecond) // exp has second precision

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)
	verifier, err := NewTokenService("ffffffffffffffffffffffffffffffff", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := issuer.Issue("ana@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	if _, err := NewTokenService("too-short", time.Hour); err == nil {
		t.Fatalf("expected error for short secret")
	}
}

func TestNewTokenService_NonPositiveTTL(t *testing.T) {
	if _, err := NewTokenService(testSecret, 0); err == nil {
		t.Fatalf("expected error for zero ttl")
	}
}
