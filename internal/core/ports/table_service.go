package ports

import (
	"context"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

type CreateTableInput struct {
	TableNumber     int
	SeatingCapacity int
	IsAvailable     *bool
}

// UpdateTableInput applies a partial update; nil fields keep their stored value.
type UpdateTableInput struct {
	TableNumber     *int
	SeatingCapacity *int
	IsAvailable     *bool
}

type TableService interface {
	Create(ctx context.Context, input CreateTableInput) (*domain.Table, error)
	Get(ctx context.Context, id uint) (*domain.Table, error)
	List(ctx context.Context) ([]domain.Table, error)
	Update(ctx context.Context, id uint, input UpdateTableInput) (*domain.Table, error)
	Delete(ctx context.Context, id uint) error
}
