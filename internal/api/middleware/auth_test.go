package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

type stubTokens struct {
	subject string
	err     error
}

func (s *stubTokens) Issue(subject string) (string, error) { return "token", nil }

func (s *stubTokens) Validate(token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.subject, nil
}

type stubUsers struct {
	user *domain.User
	err  error
}

func (s *stubUsers) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUsers) FindByEmail(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUsers) FindByID(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: "abc", Name: "Ana", Email: "ana@x.com"}
	mw := Auth(&stubTokens{subject: "ana@x.com"}, &stubUsers{user: user})

	c, _ := newAuthContext("Bearer sometoken")

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		principal, ok := c.Get("principal").(*domain.User)
		if !ok || principal.Email != "ana@x.com" {
			t.Fatalf("principal not attached: %v", c.Get("principal"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_NoHeaderStaysAnonymous(t *testing.T) {
	mw := Auth(&stubTokens{}, &stubUsers{err: domain.ErrUserNotFound})

	c, _ := newAuthContext("")

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("principal") != nil {
			t.Fatalf("expected no principal for anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("anonymous request should reach the handler")
	}
}

func TestAuth_NonBearerHeaderStaysAnonymous(t *testing.T) {
	mw := Auth(&stubTokens{err: domain.ErrTokenMalformed}, &stubUsers{})

	c, _ := newAuthContext("Basic dXNlcjpwYXNz")

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("non-bearer request should reach the handler")
	}
}

func TestAuth_InvalidTokenIsTerminal(t *testing.T) {
	for _, tokenErr := range []error{
		domain.ErrTokenExpired,
		domain.ErrTokenSignatureInvalid,
		domain.ErrTokenMalformed,
	} {
		mw := Auth(&stubTokens{err: tokenErr}, &stubUsers{})

		c, _ := newAuthContext("Bearer bad")

		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next for %v", tokenErr)
			return nil
		})

		if err := handler(c); !errors.Is(err, tokenErr) {
			t.Fatalf("expected %v, got %v", tokenErr, err)
		}
	}
}

func TestAuth_UnknownSubjectTakesGenericPath(t *testing.T) {
	mw := Auth(&stubTokens{subject: "ghost@x.com"}, &stubUsers{err: domain.ErrUserNotFound})

	c, _ := newAuthContext("Bearer sometoken")

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected wrapped ErrUserNotFound, got %v", err)
	}
	// Must not be a 401: the error handler maps unknown errors to 500.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("unknown subject must not map to an HTTP error directly, got %v", he)
	}
}

func TestRequireAuth(t *testing.T) {
	mw := RequireAuth()

	// Anonymous request is rejected.
	c, _ := newAuthContext("")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected HTTP 401 error, got %v", err)
	}

	// Authenticated request passes.
	c, _ = newAuthContext("")
	c.Set("principal", &domain.User{Email: "ana@x.com"})
	called := false
	handler = mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("authenticated request should reach the handler")
	}
}
