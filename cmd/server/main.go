package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/restaurant-platform/restaurant-api/docs"
	"github.com/restaurant-platform/restaurant-api/internal/api"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
	"github.com/restaurant-platform/restaurant-api/internal/infrastructure/config"
	gormdb "github.com/restaurant-platform/restaurant-api/internal/infrastructure/db/gorm"
	redisdb "github.com/restaurant-platform/restaurant-api/internal/infrastructure/db/redis"
	"github.com/restaurant-platform/restaurant-api/internal/infrastructure/revocation"
	"github.com/restaurant-platform/restaurant-api/pkg/logger"
)

// @title        Restaurant Management API
// @version      1.0
// @description  User accounts, menu and dining table management with token-based sessions.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := gormdb.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := gormdb.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	var (
		revoker ports.TokenRevoker
		rdb     *redis.Client
	)
	switch cfg.RevocationBackend {
	case "redis":
		rdb, err = redisdb.Connect(context.Background(), redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		revoker = redisdb.NewRevokedTokenSet(rdb)
	default:
		revoker = revocation.NewMemorySet()
	}

	e := api.NewRouter(db, rdb, revoker, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
