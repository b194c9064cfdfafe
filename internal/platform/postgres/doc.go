// Package postgres implements the store interfaces against PostgreSQL
// using direct parameterized SQL over database/sql with the pgx driver.
package postgres
