package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/handlers"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/BDF-Tech/BDF-Mobile/internal/platform/config"
	"github.com/BDF-Tech/BDF-Mobile/internal/repositories/database/pgsql"
	"github.com/BDF-Tech/BDF-Mobile/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title BDF Mobile Backend API
// @version 1.0
// @description Mobile facade over the BDF ERP: catalog, orders, invoices, ledger and scale ingestion.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryContainer(dbPool)
	svcs := services.NewServiceContainer(repos, cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcs)

	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go runScaleCleanup(cleanupCtx, logger, svcs.Scale, cfg.ScaleCleanupInterval)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection, compatible with the pgx pool the app uses.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", upErr.Error()))
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied successfully")
	}
	return nil
}

// runScaleCleanup prunes expired weight logs on a fixed interval until the
// context is cancelled.
func runScaleCleanup(ctx context.Context, logger *slog.Logger, scaleService portssvc.ScaleSvc, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := scaleService.CleanupExpiredLogs(ctx); err != nil {
				logger.Error("Scale log cleanup failed", slog.String("error", err.Error()))
			}
		}
	}
}
