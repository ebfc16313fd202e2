// Package postgres implements the store interfaces using a PostgreSQL
// database as the storage backend, reached through database/sql with
// the pgx driver. Schema management is handled by embedded goose
// migrations (see migrate.go).
package postgres
