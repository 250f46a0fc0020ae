package dbx

import (
	"context"
	"database/sql"
)

// DBTX dipenuhi oleh *sql.DB dan *sql.Tx, supaya repository
// bisa dipakai di dalam maupun di luar transaksi.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}
