package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/pos_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/pos_ledger/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/handlers"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/SscSPs/pos_ledger/internal/repositories/collection"
	"github.com/SscSPs/pos_ledger/internal/seed"
	"github.com/SscSPs/pos_ledger/pkg/config"
	"github.com/SscSPs/pos_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	store, closeStore, err := newCollectionStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize collection store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	if cfg.SeedFile != "" {
		written, err := seed.LoadFile(ctx, store, cfg.SeedFile)
		if err != nil {
			logger.Error("Failed to load seed data", slog.String("file", cfg.SeedFile), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Seed data loaded", slog.String("file", cfg.SeedFile), slog.Any("collections", written))
	}

	repos := collection.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_backend", cfg.StoreBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newCollectionStore builds the configured backend. For Postgres it runs the
// migrations first.
func newCollectionStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.CollectionStore, func(), error) {
	if cfg.StoreBackend != config.StoreBackendPostgres {
		logger.Info("Using in-memory collection store", slog.Int("quota_bytes", cfg.MemoryStoreQuotaBytes))
		return memory.NewStore(memory.WithQuota(cfg.MemoryStoreQuotaBytes)), func() {}, nil
	}

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		return nil, nil, err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewCollectionStore(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}
