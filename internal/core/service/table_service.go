package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
)

// TableService implements dining-table CRUD. Table numbers are globally
// unique; the uniqueness constraint lives in the store and surfaces here as
// ErrTableNumberTaken.
type TableService struct {
	repo   ports.TableRepository
	logger zerolog.Logger
}

func NewTableService(repo ports.TableRepository, logger zerolog.Logger) *TableService {
	return &TableService{repo: repo, logger: logger}
}

func (s *TableService) Create(ctx context.Context, input ports.CreateTableInput) (*domain.Table, error) {
	if input.TableNumber <= 0 {
		return nil, domain.ErrInvalidTableNumber
	}
	if input.SeatingCapacity <= 0 {
		return nil, domain.ErrInvalidSeatCapacity
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	created, err := s.repo.Create(ctx, &domain.Table{
		TableNumber:     input.TableNumber,
		SeatingCapacity: input.SeatingCapacity,
		IsAvailable:     available,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("table_number", input.TableNumber).Msg("failed to create table")
		return nil, err
	}

	s.logger.Info().Uint("table_id", created.ID).Int("table_number", created.TableNumber).Msg("table created")
	return created, nil
}

func (s *TableService) Get(ctx context.Context, id uint) (*domain.Table, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update: omitted fields keep their stored value.
func (s *TableService) Update(ctx context.Context, id uint, input ports.UpdateTableInput) (*domain.Table, error) {
	table, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TableNumber != nil {
		if *input.TableNumber <= 0 {
			return nil, domain.ErrInvalidTableNumber
		}
		table.TableNumber = *input.TableNumber
	}
	if input.SeatingCapacity != nil {
		if *input.SeatingCapacity <= 0 {
			return nil, domain.ErrInvalidSeatCapacity
		}
		table.SeatingCapacity = *input.SeatingCapacity
	}
	if input.IsAvailable != nil {
		table.IsAvailable = *input.IsAvailable
	}

	if err := s.repo.Update(ctx, table); err != nil {
		s.logger.Error().Err(err).Uint("table_id", id).Msg("failed to update table")
		return nil, err
	}

	s.logger.Info().Uint("table_id", id).Msg("table updated")
	return table, nil
}

func (s *TableService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("table_id", id).Msg("table deleted")
	return nil
}
