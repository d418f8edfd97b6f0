package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[uint]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

func TestRequireRole_Allows(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]*domain.User{
		1: {ID: 1, Username: "alice", Role: domain.RoleAdmin},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(1))

	called := false
	mw := RequireRole(repo, domain.RoleAdmin, domain.RoleManager)
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get("current_user").(*domain.User)
		if !ok || user.Username != "alice" {
			t.Fatalf("current_user not set: %v", c.Get("current_user"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsAndEchoesRole(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]*domain.User{
		2: {ID: 2, Username: "carl", Role: domain.RoleCustomer},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(2))

	mw := RequireRole(repo, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "Unauthorized" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
	if resp.Details["current_role"] != "Customer" {
		t.Fatalf("expected current_role echo, got %v", resp.Details)
	}
}

func TestRequireRole_UserRowGone(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]*domain.User{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(9))

	mw := RequireRole(repo, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_NoClaims(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]*domain.User{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireRole(repo, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
