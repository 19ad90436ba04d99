// Package postgres implements the store interfaces on PostgreSQL via the
// pgx stdlib driver and database/sql.
package postgres
