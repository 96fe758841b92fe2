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

	"github.com/fancyapps/users-service/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (*domain.PublicUser, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	validateFn func(ctx context.Context, userID, claimedRole string) (*domain.PublicUser, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ValidateRoleClaim(ctx context.Context, userID, claimedRole string) (*domain.PublicUser, error) {
	return s.validateFn(ctx, userID, claimedRole)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.PublicUser, error) {
			if email != "alice@example.com" || password != "abc123!" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.PublicUser{ID: "u1", Email: email, Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/register", `{"email":"alice@example.com","password":"abc123!"}`)
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

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["role"] != domain.RoleClient {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	// The response type has no password field; nothing resembling one may
	// appear in the payload.
	if strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Fatalf("password material leaked into response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.PublicUser, error) {
			return nil, domain.ErrEmailExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/register", `{"email":"bob@example.com","password":"abc123!"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.PublicUser, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/register", "not-json")
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_MissingEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.PublicUser, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/register", `{"password":"abc123!"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "abc123!" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/login", `{"email":"alice@example.com","password":"abc123!"}`)
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
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %v", resp)
	}
	if len(resp) != 1 {
		t.Fatalf("login response must be a single-field result, got %v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/login", `{"email":"alice@example.com","password":"bad1234!"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/auth/login", `{"email":"ghost@example.com","password":"abc123!"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("current_user", &domain.PublicUser{ID: "u1", Email: "a@b.com", Role: domain.RoleAdmin})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u1" || resp["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
