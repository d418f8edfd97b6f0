package ports

import (
	"context"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

type UserService interface {
	// GetProfile returns the target user's profile, provided the caller is
	// the owner or holds a staff role.
	GetProfile(ctx context.Context, callerID, targetID uint) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
