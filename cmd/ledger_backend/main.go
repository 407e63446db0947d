//go:generate swag init -g cmd/ledger_backend/main.go -d ../../ -o ../docs

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/handlers"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/pocket_ledger/internal/repositories/memory"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/SscSPs/pocket_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Pocket Ledger API
// @version 1.0
// @description Expense and income ledger with month paging and period statistics.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeStore, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to open ledger store", slog.String("backend", cfg.DataBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	rateLimiter := limiter.New(limitermemory.NewStore(), rate)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowAllOrigins:  len(cfg.CORSAllowedOrigins) == 0,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", middleware.ClientIDHeader},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter), middleware.ClientIDMiddleware(), middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)
	if _, err := serviceContainer.Categories.SeedDefaults(context.Background()); err != nil {
		logger.Error("Failed to seed default categories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("backend", cfg.DataBackend),
		slog.String("timezone", cfg.Location.String()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore builds the ledger stores for the configured backend and returns
// the function releasing them.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		logger.Info("Running database migrations...")
		if err := database.RunPostgresMigrations(cfg.DatabaseURL, cfg.PGMigrationsPath, logger); err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLiteDBPath)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("SQLite database opened", slog.String("path", cfg.SQLiteDBPath))
		return sqlite.NewRepositoryProvider(db, cfg.Location), closeSQL(db, logger), nil

	case config.BackendMemory:
		logger.Warn("Using the in-memory store; data is lost on restart")
		return memory.NewRepositoryProvider(), func() {}, nil
	}
	return repositories.RepositoryProvider{}, nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
}

func closeSQL(db *sql.DB, logger *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
		}
	}
}
