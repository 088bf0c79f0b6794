// Package postgres implements the store interfaces on PostgreSQL through the
// pgx database/sql driver. It also owns the embedded goose migrations and
// maps PostgreSQL error codes onto store errors.
package postgres
