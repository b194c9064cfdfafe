// Package store defines the persistence interfaces and sentinel errors
// shared by the service's storage backends. Concrete implementations
// live under internal/platform/postgres.
package store
