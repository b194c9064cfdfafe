package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmabolt/pharmabolt-api/internal/config"
)

func TestBuildDSN(t *testing.T) {
	t.Parallel()

	t.Run("plain connection", func(t *testing.T) {
		t.Parallel()

		dsn := buildDSN(config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "pharmabolt",
			Password: "pw",
			Name:     "pharmacy",
		})

		assert.Equal(t, "postgres://pharmabolt:pw@localhost:5432/pharmacy", dsn)
	})

	t.Run("CA bundle enables full verification", func(t *testing.T) {
		t.Parallel()

		dsn := buildDSN(config.DatabaseConfig{
			Host:        "db.example.com",
			Port:        5432,
			User:        "pharmabolt",
			Password:    "pw",
			Name:        "pharmacy",
			SSLRootCert: "us-east-1-bundle.pem",
		})

		assert.Contains(t, dsn, "sslmode=verify-full")
		assert.Contains(t, dsn, "sslrootcert=us-east-1-bundle.pem")
	})
}
