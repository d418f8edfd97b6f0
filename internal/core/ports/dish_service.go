package ports

import (
	"context"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

type CreateDishInput struct {
	Name        string
	Description string
	Price       float64
}

// UpdateDishInput applies a partial update; nil fields keep their stored value.
type UpdateDishInput struct {
	Name        *string
	Description *string
	Price       *float64
}

type DishService interface {
	Create(ctx context.Context, input CreateDishInput) (*domain.Dish, error)
	Get(ctx context.Context, id uint) (*domain.Dish, error)
	List(ctx context.Context) ([]domain.Dish, error)
	Update(ctx context.Context, id uint, input UpdateDishInput) (*domain.Dish, error)
	Delete(ctx context.Context, id uint) error
}
