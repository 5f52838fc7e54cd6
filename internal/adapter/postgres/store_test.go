package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

// fakeTx records how a transaction ended. Methods the store does not call
// on the transaction itself fall through to the nil embedded pgx.Tx.
type fakeTx struct {
	pgx.Tx
	commitErr error
	closed    bool
	commits   int
	rollbacks int
}

func (f *fakeTx) Commit(context.Context) error {
	if f.closed {
		return pgx.ErrTxClosed
	}
	f.closed = true
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits++
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.closed {
		return pgx.ErrTxClosed
	}
	f.closed = true
	f.rollbacks++
	return nil
}

type fakePool struct {
	tx   *fakeTx
	opts []pgx.TxOptions
	err  error
}

func (p *fakePool) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	p.opts = append(p.opts, opts)
	if p.err != nil {
		return nil, p.err
	}
	return p.tx, nil
}

func newFakeStore() (*Store, *fakePool) {
	pool := &fakePool{tx: &fakeTx{}}
	return &Store{pool: pool, timeout: time.Second}, pool
}

func TestTransactCommits(t *testing.T) {
	s, pool := newFakeStore()

	err := s.Transact(context.Background(), func(context.Context, port.Tx) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, 1, pool.tx.commits)
	assert.Zero(t, pool.tx.rollbacks)
	require.Len(t, pool.opts, 1)
	assert.Equal(t, pgx.RepeatableRead, pool.opts[0].IsoLevel)
	assert.NotEqual(t, pgx.ReadOnly, pool.opts[0].AccessMode)
}

func TestTransactRollsBackOnError(t *testing.T) {
	s, pool := newFakeStore()

	err := s.Transact(context.Background(), func(context.Context, port.Tx) error {
		return domain.OverBudget(decimal.NewFromInt(1), decimal.NewFromInt(2))
	})
	require.ErrorIs(t, err, domain.ErrOverBudget)

	assert.Zero(t, pool.tx.commits)
	assert.Equal(t, 1, pool.tx.rollbacks)
}

func TestTransactRollsBackOnPanic(t *testing.T) {
	s, pool := newFakeStore()

	assert.PanicsWithValue(t, "counter recount failed", func() {
		_ = s.Transact(context.Background(), func(context.Context, port.Tx) error {
			panic("counter recount failed")
		})
	})

	assert.Zero(t, pool.tx.commits, "a panicking transaction must not commit")
	assert.Equal(t, 1, pool.tx.rollbacks)
}

func TestTransactTranslatesCommitFailure(t *testing.T) {
	s, pool := newFakeStore()
	pool.tx.commitErr = &pgconn.PgError{Code: "40001"}

	err := s.Transact(context.Background(), func(context.Context, port.Tx) error { return nil })
	require.ErrorIs(t, err, domain.ErrConcurrentModification)
	assert.True(t, domain.IsRetryable(err))
}

func TestTransactTranslatesBeginFailure(t *testing.T) {
	s, pool := newFakeStore()
	pool.err = fmt.Errorf("dial: %w", context.DeadlineExceeded)

	called := false
	err := s.Transact(context.Background(), func(context.Context, port.Tx) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.False(t, called)
}

func TestViewIsReadOnlyAndAlwaysRollsBack(t *testing.T) {
	s, pool := newFakeStore()

	err := s.View(context.Background(), func(context.Context, port.ReadTx) error { return nil })
	require.NoError(t, err)

	require.Len(t, pool.opts, 1)
	assert.Equal(t, pgx.ReadOnly, pool.opts[0].AccessMode)
	assert.Zero(t, pool.tx.commits)
	assert.Equal(t, 1, pool.tx.rollbacks)

	pool.tx = &fakeTx{}
	want := errors.New("boom")
	err = s.View(context.Background(), func(context.Context, port.ReadTx) error { return want })
	require.ErrorIs(t, err, want)
	assert.Equal(t, 1, pool.tx.rollbacks)
}
