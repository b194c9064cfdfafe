package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pharmabolt/pharmabolt-api/internal/config"
)

// openDatabase connects to PostgreSQL, configures the connection pool
// and verifies the connection with a ping.
func openDatabase(cfg *config.Config, appLogger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", buildDSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	appLogger.Info("database connection established",
		"host", cfg.Database.Host,
		"database", cfg.Database.Name)
	return db, nil
}

// buildDSN assembles a postgres connection URL. When a CA bundle path
// is configured the connection requires full TLS verification, which
// is how managed providers like RDS are connected to.
func buildDSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/" + cfg.Name,
	}

	q := url.Values{}
	if cfg.SSLRootCert != "" {
		q.Set("sslmode", "verify-full")
		q.Set("sslrootcert", cfg.SSLRootCert)
	}
	u.RawQuery = q.Encode()

	return u.String()
}
