package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
)

// DishService implements menu CRUD.
type DishService struct {
	repo   ports.DishRepository
	logger zerolog.Logger
}

func NewDishService(repo ports.DishRepository, logger zerolog.Logger) *DishService {
	return &DishService{repo: repo, logger: logger}
}

func (s *DishService) Create(ctx context.Context, input ports.CreateDishInput) (*domain.Dish, error) {
	if input.Price < 0 {
		return nil, domain.ErrNegativePrice
	}

	created, err := s.repo.Create(ctx, &domain.Dish{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create dish")
		return nil, err
	}

	s.logger.Info().Uint("dish_id", created.ID).Str("name", created.Name).Msg("dish created")
	return created, nil
}

func (s *DishService) Get(ctx context.Context, id uint) (*domain.Dish, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update: omitted fields keep their stored value.
func (s *DishService) Update(ctx context.Context, id uint, input ports.UpdateDishInput) (*domain.Dish, error) {
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		dish.Name = *input.Name
	}
	if input.Description != nil {
		dish.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domain.ErrNegativePrice
		}
		dish.Price = *input.Price
	}

	if err := s.repo.Update(ctx, dish); err != nil {
		s.logger.Error().Err(err).Uint("dish_id", id).Msg("failed to update dish")
		return nil, err
	}

	s.logger.Info().Uint("dish_id", id).Msg("dish updated")
	return dish, nil
}

func (s *DishService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("dish_id", id).Msg("dish deleted")
	return nil
}
