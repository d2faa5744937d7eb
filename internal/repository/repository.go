// Package repository provides data access layer implementations for the
// wallet API.
package repository

import (
	"context"
	"database/sql"
)

// Querier abstracts *db.DB and *sql.Tx so the same repository code can run
// standalone or inside a transaction opened by a service.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
