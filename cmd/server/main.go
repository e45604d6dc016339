package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fintrack-app/fintrack-backend/internal/adapter/httpapi"
	boltstorage "github.com/fintrack-app/fintrack-backend/internal/adapter/storage/bolt"
	pgstorage "github.com/fintrack-app/fintrack-backend/internal/adapter/storage/postgres"
	"github.com/fintrack-app/fintrack-backend/internal/config"
	"github.com/fintrack-app/fintrack-backend/internal/domain"
	"github.com/fintrack-app/fintrack-backend/internal/ledger"
	"github.com/fintrack-app/fintrack-backend/internal/logger"
	"github.com/fintrack-app/fintrack-backend/internal/usecase/dashboard"
	"github.com/fintrack-app/fintrack-backend/internal/usecase/seeder"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// 1. Setup storage
	kv, closeStorage, err := openStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open storage")
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()
	log.Info().Str("backend", cfg.StorageBackend).Msg("storage initialized")

	// 2. Initialize the ledger store, seeding demo data on first run
	demo := seeder.NewDemoSeeder()
	store := ledger.NewStore(kv, log)
	if err := store.Load(demo); err != nil {
		log.Fatal().Err(err).Msg("failed to load ledger")
	}
	if store.FirstVisit() {
		log.Info().Msg("first run detected, demo data seeded")
	}

	// 3. Initialize services and the HTTP server
	dashboardService := dashboard.NewDashboardService(store)
	api := httpapi.NewServer(store, dashboardService, demo, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.Router(cfg.APIToken),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	waitForShutdown(srv, log)
}

// openStorage selects the key-value backend from configuration
func openStorage(cfg *config.Config) (domain.KeyValue, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		store, err := pgstorage.New(cfg.DBConnStr)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.BoltDBPath), 0o755); err != nil {
			return nil, nil, err
		}
		store, err := boltstorage.New(cfg.BoltDBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(srv *http.Server, log zerolog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("HTTP server stopped")
}
