package ports

import (
	"context"
	"time"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role is the raw
// client string; the service normalises it and defaults to Customer.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}
