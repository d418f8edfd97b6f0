// Package gormdb implements the persistence ports on a relational store
// through GORM. Production runs against Postgres; tests use an in-memory
// SQLite database through the same repositories.
package gormdb

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

// Connect opens a Postgres-backed GORM handle. TranslateError is enabled so
// constraint violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema if absent. No destructive migration is performed.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Dish{}, &domain.Table{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
