// Package main is the entry point for the Financial Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/gap-tools/financial-tracker-backend/config"
	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/infra/db"
	"github.com/gap-tools/financial-tracker-backend/internal/infra/dependency"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Financial Tracker API",
		"environment", cfg.Server.Environment,
		"storage_backend", cfg.Storage.Backend,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the snapshot backend. A failed backend degrades to the
	// in-memory store: the ledger keeps working, persistence is lost on exit.
	snapshots, storageHealthCheck, closeStorage := openSnapshotStore(cfg)
	defer closeStorage()

	// Wire the application
	injector := dependency.NewInjector(cfg, snapshots, storageHealthCheck, logger)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// openSnapshotStore builds the snapshot store the config selects, falling
// back to the in-memory store when the backend is unreachable.
func openSnapshotStore(cfg *config.Config) (adapter.SnapshotStore, func() bool, func()) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis connection failed, running with in-memory snapshots", "error", err)
			return persistence.NewMemorySnapshotStore(), func() bool { return false }, noop
		}
		slog.Info("Redis connection established", "addr", cfg.Redis.Addr)
		healthCheck := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}
		return persistence.NewRedisSnapshotStore(client), healthCheck, closeFn

	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		database, err := db.NewConnection(&cfg.Storage)
		if err != nil {
			slog.Warn("Database connection failed, running with in-memory snapshots", "error", err)
			return persistence.NewMemorySnapshotStore(), func() bool { return false }, noop
		}
		if err := database.AutoMigrate(&model.SnapshotModel{}); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")
		closeFn := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return persistence.NewSnapshotRepository(database.DB()), database.HealthCheck, closeFn

	default:
		if cfg.Storage.Backend != config.StorageBackendMemory {
			slog.Warn("Unknown storage backend, running with in-memory snapshots", "backend", cfg.Storage.Backend)
		}
		return persistence.NewMemorySnapshotStore(), func() bool { return true }, noop
	}
}
