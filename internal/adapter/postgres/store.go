package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adsmarket/internal/core/port"
)

var _ port.Store = (*Store)(nil)

// Store implements port.Store using pgxpool for PostgreSQL. Every
// transaction runs at REPEATABLE READ; rows are written with an optimistic
// version predicate and the schema's unique constraints stay authoritative
// for booking keys and platform urls.
type Store struct {
	pool    beginner
	timeout time.Duration
}

// beginner is the part of pgxpool.Pool the store needs.
type beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// NewStore returns a store over pool. timeout bounds each transaction; zero
// disables the bound.
func NewStore(pool *pgxpool.Pool, timeout time.Duration) *Store {
	return &Store{pool: pool, timeout: timeout}
}

// Transact runs fn inside one read-write transaction. It commits when fn
// returns nil and rolls back when fn fails or panics.
func (s *Store) Transact(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{IsoLevel: pgx.RepeatableRead}, func(pgTx pgx.Tx) error {
		return fn(ctx, &tx{q: pgTx})
	})
	return translate(err)
}

// View runs fn inside one read-only REPEATABLE READ transaction so a page
// and its total count observe the same snapshot.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, tx port.ReadTx) error) (err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	pgTx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return translate(err)
	}
	defer func() {
		// Nothing to commit; rollback just releases the snapshot.
		_ = pgTx.Rollback(context.WithoutCancel(ctx))
		err = translate(err)
	}()
	return fn(ctx, &tx{q: pgTx})
}

func (s *Store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// tx adapts a pgx.Tx to port.Tx.
type tx struct {
	q pgx.Tx
}
