package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/restaurant-platform/restaurant-api/internal/api/handler"
	"github.com/restaurant-platform/restaurant-api/internal/api/middleware"
	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
	"github.com/restaurant-platform/restaurant-api/internal/core/service"
	"github.com/restaurant-platform/restaurant-api/internal/infrastructure/config"
	gormdb "github.com/restaurant-platform/restaurant-api/internal/infrastructure/db/gorm"
	"github.com/restaurant-platform/restaurant-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the in-memory revocation backend is selected.
func NewRouter(db *gorm.DB, rdb *redis.Client, revoker ports.TokenRevoker, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("restaurant"))

	// --- Dependencies ---
	userRepo := gormdb.NewUserRepository(db)
	dishRepo := gormdb.NewDishRepository(db)
	tableRepo := gormdb.NewTableRepository(db)

	tokenTTL := time.Duration(cfg.TokenExpirySeconds) * time.Second
	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, tokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	dishService := service.NewDishService(dishRepo, log)
	tableService := service.NewTableService(tableRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	dishHandler := handler.NewDishHandler(dishService)
	tableHandler := handler.NewTableHandler(tableService)

	authn := middleware.Auth(cfg.JWTSecret, revoker)
	adminOnly := middleware.RequireRole(userRepo, domain.RoleAdmin)
	staffOnly := middleware.RequireRole(userRepo, domain.RoleAdmin, domain.RoleManager)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, authn)

	// --- User routes ---
	e.GET("/users/:id", userHandler.Get, authn)
	e.GET("/users", userHandler.List, authn, adminOnly)

	// --- Dish routes (reads are public) ---
	e.GET("/dishes", dishHandler.List)
	e.GET("/dishes/:id", dishHandler.Get)
	e.POST("/dishes", dishHandler.Create, authn, staffOnly)
	e.PUT("/dishes/:id", dishHandler.Update, authn, staffOnly)
	e.DELETE("/dishes/:id", dishHandler.Delete, authn, staffOnly)

	// --- Table routes (reads are public) ---
	e.GET("/tables", tableHandler.List)
	e.GET("/tables/:id", tableHandler.Get)
	e.POST("/tables", tableHandler.Create, authn, staffOnly)
	e.PUT("/tables/:id", tableHandler.Update, authn, staffOnly)
	e.DELETE("/tables/:id", tableHandler.Delete, authn, staffOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
