package ports

import (
	"context"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

// TableRepository defines the persistence interface for dining tables.
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	FindByID(ctx context.Context, id uint) (*domain.Table, error)
	List(ctx context.Context) ([]domain.Table, error)
	Update(ctx context.Context, table *domain.Table) error
	Delete(ctx context.Context, id uint) error
}
