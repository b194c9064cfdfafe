package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseEnv returns the minimum environment needed for Load to succeed.
func baseEnv() map[string]string {
	return map[string]string{
		"DB_HOST":     "db.internal",
		"DB_USERNAME": "pharmabolt",
		"DB_PASSWORD": "s3cret",
		"DB_NAME":     "pharmabolt",
		"JWT_SECRET":  "test-secret-that-is-at-least-32-chars!!",
	}
}

func setEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, baseEnv())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadLegacyEnvNames(t *testing.T) {
	env := baseEnv()
	env["PORT"] = "9090"
	env["DB_PORT"] = "6432"
	env["DB_SSL_ROOT_CERT"] = "testdata/ca-bundle.pem"
	setEnv(t, env)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "testdata/ca-bundle.pem", cfg.Database.SSLRootCert)
}

func TestLoadPrefixedEnvWins(t *testing.T) {
	env := baseEnv()
	env["PORT"] = "9090"
	env["PHARMABOLT_SERVER_PORT"] = "9191"
	setEnv(t, env)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr bool
	}{
		{
			name:    "valid configuration",
			mutate:  func(map[string]string) {},
			wantErr: false,
		},
		{
			name: "jwt secret too short",
			mutate: func(env map[string]string) {
				env["JWT_SECRET"] = "too-short"
			},
			wantErr: true,
		},
		{
			name: "missing database host",
			mutate: func(env map[string]string) {
				delete(env, "DB_HOST")
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			mutate: func(env map[string]string) {
				env["PHARMABOLT_SERVER_LOG_LEVEL"] = "verbose"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := baseEnv()
			tt.mutate(env)
			setEnv(t, env)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}
