package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(table).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTableNumberTaken
		}
		return nil, fmt.Errorf("insert table: %w", err)
	}
	return table, nil
}

func (r *TableRepository) FindByID(ctx context.Context, id uint) (*domain.Table, error) {
	var table domain.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("find table: %w", err)
	}
	return &table, nil
}

func (r *TableRepository) List(ctx context.Context) ([]domain.Table, error) {
	var tables []domain.Table
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (r *TableRepository) Update(ctx context.Context, table *domain.Table) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Table{ID: table.ID}).Updates(map[string]any{
			"table_number":     table.TableNumber,
			"seating_capacity": table.SeatingCapacity,
			"is_available":     table.IsAvailable,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTableNotFound
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTableNotFound):
			return err
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return domain.ErrTableNumberTaken
		}
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

func (r *TableRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Table{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTableNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			return err
		}
		return fmt.Errorf("delete table: %w", err)
	}
	return nil
}
