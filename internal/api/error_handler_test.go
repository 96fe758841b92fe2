package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fancyapps/users-service/internal/core/domain"
)

func newContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"weak password", domain.ErrWeakPassword, http.StatusBadRequest},
		{"duplicate email", domain.ErrEmailExists, http.StatusConflict},
		{"unknown user", domain.ErrUserNotFound, http.StatusNotFound},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"stale role", domain.ErrStaleRole, http.StatusUnauthorized},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"unknown app", domain.ErrAppNotFound, http.StatusNotFound},
		{"storage down", domain.NewStorageError("find user", errors.New("dial tcp: refused")), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := resolveError(tc.err, zerolog.Nop(), newContext())
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
		})
	}
}

func TestResolveError_HidesInternalDetail(t *testing.T) {
	err := domain.NewStorageError("find user by email", errors.New("dial tcp 10.0.0.5:27017: connection refused"))

	_, msg := resolveError(err, zerolog.Nop(), newContext())
	if strings.Contains(msg, "10.0.0.5") || strings.Contains(msg, "dial tcp") {
		t.Fatalf("driver detail leaked to the client: %q", msg)
	}
}

func TestResolveError_StaleRoleMessageGeneric(t *testing.T) {
	err := fmt.Errorf("%w: user u1 presented role %q but current role is %q",
		domain.ErrStaleRole, domain.RoleAdmin, domain.RoleClient)

	_, msg := resolveError(err, zerolog.Nop(), newContext())
	if strings.Contains(msg, domain.RoleAdmin) || strings.Contains(msg, domain.RoleClient) {
		t.Fatalf("role detail must stay in the audit sink, got %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusTeapot, "short and stout"), zerolog.Nop(), newContext())
	if code != http.StatusTeapot || msg != "short and stout" {
		t.Fatalf("echo error not passed through: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(domain.ErrEmailExists, c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}
