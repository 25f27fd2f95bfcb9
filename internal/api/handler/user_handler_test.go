package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) FindByID(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func TestUserHandler_Ola(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ola", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewUserHandler(&stubUserRepo{})
	if err := h.Ola(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "Olá Mundo!" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestUserHandler_Me(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/usuarios/eu", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", &domain.User{ID: "abc123", Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"})

	h := NewUserHandler(&stubUserRepo{})
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc123" || resp["email"] != "ana@x.com" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked in response")
	}
}

func TestUserHandler_Me_NoPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/usuarios/eu", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewUserHandler(&stubUserRepo{})
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected HTTP 401 error, got %v", err)
	}
}

func TestUserHandler_GetByID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/usuarios/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	user := &domain.User{ID: "abc123", Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"}
	h := NewUserHandler(&stubUserRepo{user: user})

	if err := h.GetByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc123" || resp["nome"] != "Ana" || resp["email"] != "ana@x.com" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked in response")
	}
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/usuarios/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewUserHandler(&stubUserRepo{err: domain.ErrUserNotFound})

	err := h.GetByID(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected HTTP 404 error, got %v", err)
	}
}
