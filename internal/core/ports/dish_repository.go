package ports

import (
	"context"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

// DishRepository defines the persistence interface for menu items.
type DishRepository interface {
	Create(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
	FindByID(ctx context.Context, id uint) (*domain.Dish, error)
	List(ctx context.Context) ([]domain.Dish, error)
	Update(ctx context.Context, dish *domain.Dish) error
	Delete(ctx context.Context, id uint) error
}
