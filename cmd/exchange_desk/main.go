package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/exchange_desk/internal/adapters/cache"
	"github.com/SscSPs/exchange_desk/internal/adapters/exchangeapi"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/core/services"
	"github.com/SscSPs/exchange_desk/internal/handlers"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/SscSPs/exchange_desk/internal/platform/config"
	"github.com/SscSPs/exchange_desk/internal/repositories/database/pgsql"
	"github.com/SscSPs/exchange_desk/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Exchange Desk API
// @version 1.0
// @description Backend for currency exchange providers and their guests.

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, closeStore, err := openSnapshotStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize snapshot store", slog.String("driver", cfg.CacheDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("Snapshot store ready", slog.String("driver", cfg.CacheDriver))

	client := exchangeapi.NewClient(cfg.ExchangeAPIBaseURL, cfg.ExchangeAPITimeout)
	repos := exchangeapi.NewRepositoryProvider(client, store)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	ipLimiter, err := middleware.NewIPLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to build rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(ipLimiter))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("exchange_api", cfg.ExchangeAPIBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openSnapshotStore builds the store selected by CACHE_DRIVER and returns its cleanup func.
func openSnapshotStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SnapshotStore, func(), error) {
	switch cfg.CacheDriver {
	case config.CacheDriverRedis:
		store, err := cache.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "exchange_desk:")
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.CacheDriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pgsql.NewPgxSnapshotRepository(pool), pool.Close, nil

	default:
		store := cache.NewMemoryStore()
		return store, func() { _ = store.Close() }, nil
	}
}
