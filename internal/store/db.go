package store

import (
	"context"
	"database/sql"
)

// DBTX is the database handle the user store runs its statements against.
// Both *sql.DB and *sql.Tx satisfy it, so store implementations stay unaware
// of whether the caller hands them a pooled connection or something narrower;
// the user store itself only ever needs single-statement execution.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
