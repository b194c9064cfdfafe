// Package main implements the entry point for the Pharmabolt API
// server, a pharmacy inventory and user management service backed by
// PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pharmabolt/pharmabolt-api/internal/api"
	apimiddleware "github.com/pharmabolt/pharmabolt-api/internal/api/middleware"
	"github.com/pharmabolt/pharmabolt-api/internal/config"
	"github.com/pharmabolt/pharmabolt-api/internal/platform/logger"
	"github.com/pharmabolt/pharmabolt-api/internal/platform/postgres"
	"github.com/pharmabolt/pharmabolt-api/internal/service/auth"
)

func main() {
	// A missing .env is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	passwordHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	passwordVerifier := auth.NewBcryptVerifier()

	userStore := postgres.NewPostgresUserStore(db, passwordHasher, appLogger)
	drugStore := postgres.NewPostgresDrugStore(db, appLogger)

	router := api.NewRouter(
		api.NewAuthHandler(userStore, tokenService, passwordVerifier),
		api.NewDrugHandler(drugStore),
		api.NewUserHandler(userStore),
		apimiddleware.NewAuthMiddleware(tokenService),
	)

	return serve(cfg, appLogger, router)
}

func serve(cfg *config.Config, appLogger *slog.Logger, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdownCh:
		appLogger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	appLogger.Info("server stopped")
	return nil
}
