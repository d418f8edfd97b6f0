package gormdb

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: domain.RoleCustomer,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{
		Username: "alice2", Email: "alice@example.com", PasswordHash: "x", Role: domain.RoleCustomer,
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = repo.Create(ctx, &domain.User{
		Username: "alice", Email: "other@example.com", PasswordHash: "x", Role: domain.RoleCustomer,
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserRepository_Lookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Username: "bob", Email: "bob@example.com", PasswordHash: "x", Role: domain.RoleManager,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", byID.Username)
	require.Equal(t, domain.RoleManager, byID.Role)

	byEmail, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, 999)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestDishRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Dish{
		Name: "soup", Description: "of the day", Price: 4.5,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 4.5, found.Price)

	found.Price = 5.5
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 5.5, found.Price)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestDishRepository_MissingRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	ctx := context.Background()

	require.ErrorIs(t, repo.Delete(ctx, 42), domain.ErrDishNotFound)
	require.ErrorIs(t, repo.Update(ctx, &domain.Dish{ID: 42, Name: "x", Description: "y"}), domain.ErrDishNotFound)
}

func TestTableRepository_UniqueTableNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Table{TableNumber: 7, SeatingCapacity: 4, IsAvailable: true})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Table{TableNumber: 7, SeatingCapacity: 2, IsAvailable: true})
	require.ErrorIs(t, err, domain.ErrTableNumberTaken)

	second, err := repo.Create(ctx, &domain.Table{TableNumber: 8, SeatingCapacity: 2, IsAvailable: true})
	require.NoError(t, err)

	// Renumbering onto an occupied table number hits the same constraint.
	second.TableNumber = first.TableNumber
	require.ErrorIs(t, repo.Update(ctx, second), domain.ErrTableNumberTaken)
}

func TestTableRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Table{TableNumber: 1, SeatingCapacity: 2, IsAvailable: true})
	require.NoError(t, err)

	created.IsAvailable = false
	created.SeatingCapacity = 6
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, found.IsAvailable)
	require.Equal(t, 6, found.SeatingCapacity)

	tables, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrTableNotFound)
}
