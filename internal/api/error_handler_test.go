package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campushub/events-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body["error"]
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid email or password"},
		{"throttled", domain.ErrTooManyLoginAttempts, http.StatusTooManyRequests, "too many failed login attempts"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"event missing", domain.ErrEventNotFound, http.StatusNotFound, "event not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("find event: context"), domain.ErrEventNotFound)
	code, msg := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if msg != "event not found" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "no token, authorization denied" {
		t.Fatalf("unexpected message %q", msg)
	}
}
