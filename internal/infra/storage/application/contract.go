package application

import (
	"context"
	"database/sql"
)

// DBExecutor is the database handle the repository runs queries on.
// Satisfied by *sql.DB, *sql.Tx and the metrics wrapper.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
