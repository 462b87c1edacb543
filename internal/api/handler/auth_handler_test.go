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

	"github.com/campushub/events-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			if name != "alice" || email != "a@x.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/register",
		`{"name":"alice","email":"a@x.com","password":"secret1"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["message"] != "registration successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			return "", domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users/register",
		`{"name":"bob","email":"b@x.com","password":"secret1"}`)

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users/register", "not-json")

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users/register", `{"name":"carol"}`)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "a@x.com" || password != "pw12345" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token456", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/login",
		`{"email":"a@x.com","password":"pw12345"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token456" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users/login",
		`{"email":"a@x.com","password":"wrong1"}`)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrTooManyLoginAttempts
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users/login",
		`{"email":"a@x.com","password":"wrong1"}`)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrTooManyLoginAttempts) {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
}
