// Package config loads and validates application settings from
// environment variables and an optional config file, giving the rest
// of the service type-safe access to server, database, and auth
// configuration.
package config
