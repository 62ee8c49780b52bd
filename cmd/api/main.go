// Package main is the entry point for the SmartExpenseTracker API server.
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

	"github.com/Avaria395/SmartExpenseTracker/config"
	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/infra/cache"
	"github.com/Avaria395/SmartExpenseTracker/internal/infra/db"
	"github.com/Avaria395/SmartExpenseTracker/internal/infra/dependency"
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

	slog.Info("Starting SmartExpenseTracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the statistics cache; Redis failures degrade to no cache
	var statsCache adapter.StatsCache = cache.NewNoopCache()
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, statistics cache disabled", "error", err)
		} else {
			statsCache = redisCache
			defer func() {
				if err := redisCache.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
			slog.Info("Statistics cache initialized")
		}
	}

	// Wire the application graph
	injector := dependency.NewFromConfig(database.DB(), statsCache, cfg, database.HealthCheck)

	// Seed default data on first run
	if cfg.Seed.Enabled {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := injector.SeedDefaults.Execute(seedCtx); err != nil {
			cancel()
			slog.Error("Failed to seed default data", "error", err)
			os.Exit(1)
		}
		cancel()
	}

	// Setup router
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
