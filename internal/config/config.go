package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// SSLRootCert is optional; when set, connections verify the server
// certificate against that CA bundle (sslmode=verify-full).
type DatabaseConfig struct {
	Host        string `mapstructure:"host"          validate:"required"`
	Port        int    `mapstructure:"port"          validate:"required,gt=0,lt=65536"`
	User        string `mapstructure:"user"          validate:"required"`
	Password    string `mapstructure:"password"      validate:"required"`
	Name        string `mapstructure:"name"          validate:"required"`
	SSLRootCert string `mapstructure:"ssl_root_cert"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"required,gte=4,lte=31"`
}
