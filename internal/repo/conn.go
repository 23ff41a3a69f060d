package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/people-registry/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// acquirer is implemented by *pgxpool.Pool.
type acquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// withConn runs fn against exactly one connection.
// When the repo is backed by a pool the connection is acquired here and
// released when fn returns, on every path; an acquisition failure is
// reported as domain.ErrUnavailable. Any other db (a transaction in tests)
// is used as is.
func withConn(ctx context.Context, d db, fn func(db) error) error {
	p, ok := d.(acquirer)
	if !ok {
		return fn(d)
	}
	conn, err := p.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %w", domain.ErrUnavailable, err)
	}
	defer conn.Release()
	return fn(conn)
}
