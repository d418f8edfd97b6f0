package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

type DishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{db: db}
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(dish).Error
	})
	if err != nil {
		return nil, fmt.Errorf("insert dish: %w", err)
	}
	return dish, nil
}

func (r *DishRepository) FindByID(ctx context.Context, id uint) (*domain.Dish, error) {
	var dish domain.Dish
	if err := r.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDishNotFound
		}
		return nil, fmt.Errorf("find dish: %w", err)
	}
	return &dish, nil
}

func (r *DishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	var dishes []domain.Dish
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

func (r *DishRepository) Update(ctx context.Context, dish *domain.Dish) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Dish{ID: dish.ID}).Updates(map[string]any{
			"name":        dish.Name,
			"description": dish.Description,
			"price":       dish.Price,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDishNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return err
		}
		return fmt.Errorf("update dish: %w", err)
	}
	return nil
}

func (r *DishRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Dish{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDishNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return err
		}
		return fmt.Errorf("delete dish: %w", err)
	}
	return nil
}
