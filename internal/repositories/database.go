package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStockConflict is returned when a stock adjustment would drive a
// product's stock_quantity below zero.
var ErrStockConflict = errors.New("insufficient stock")

// Database is the subset of *pgxpool.Pool the repositories need. pgxmock's
// pool interface satisfies it too, which keeps the repositories testable
// without a live database.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}
