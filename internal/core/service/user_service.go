package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
)

// UserService exposes read access to user accounts. Profile access is
// restricted to the owner and staff roles; listing is gated to Admin at the
// routing layer.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) GetProfile(ctx context.Context, callerID, targetID uint) (*domain.User, error) {
	if callerID != targetID {
		caller, err := s.users.FindByID(ctx, callerID)
		if err != nil {
			// The token subject no longer maps to a row: treat the
			// identity as absent rather than surfacing a 404/500.
			return nil, domain.ErrUnauthorized
		}
		if !caller.Role.IsStaff() {
			return nil, domain.ErrUnauthorized
		}
	}

	return s.users.FindByID(ctx, targetID)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
