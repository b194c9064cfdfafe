package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// legacyEnvBindings maps config keys to the unprefixed environment
// variable names the service has historically been deployed with.
// These take effect only when the PHARMABOLT_-prefixed variant is unset.
var legacyEnvBindings = map[string]string{
	"server.port":                 "PORT",
	"database.host":               "DB_HOST",
	"database.port":               "DB_PORT",
	"database.user":               "DB_USERNAME",
	"database.password":           "DB_PASSWORD",
	"database.name":               "DB_NAME",
	"database.ssl_root_cert":      "DB_SSL_ROOT_CERT",
	"auth.jwt_secret":             "JWT_SECRET",
	"auth.token_lifetime_minutes": "JWT_TOKEN_LIFETIME_MINUTES",
}

// Load reads configuration from environment variables and, when present,
// a config.yaml in the working directory. Environment variables take
// precedence over file values. Returns a populated Config struct or an
// error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.port", 5432)
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 10)

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables: PHARMABOLT_SERVER_PORT, PHARMABOLT_AUTH_JWT_SECRET, ...
	v.SetEnvPrefix("PHARMABOLT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envName := range legacyEnvBindings {
		if err := v.BindEnv(key, "PHARMABOLT_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), envName); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", envName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
