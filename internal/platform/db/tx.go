package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebook/carebook/internal/platform/apperr"
)

// Querier is the subset of pgx that repositories issue statements through.
// Both *pgxpool.Pool and pgx.Tx satisfy it, so repository code is oblivious
// to whether it runs inside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type contextKey string

const txKey contextKey = "tx"

// QuerierFromContext returns the transaction bound to ctx, or nil when the
// caller is not inside one.
func QuerierFromContext(ctx context.Context) Querier {
	q, _ := ctx.Value(txKey).(Querier)
	return q
}

// TxRunner executes a function inside a serializable transaction. Services
// depend on this interface so tests can substitute a pass-through.
type TxRunner interface {
	Serializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// PoolRunner is the production TxRunner backed by a pgx pool.
type PoolRunner struct {
	pool *pgxpool.Pool
}

func NewPoolRunner(pool *pgxpool.Pool) *PoolRunner {
	return &PoolRunner{pool: pool}
}

// Serializable runs fn inside a SERIALIZABLE transaction, exposing the
// transaction to repositories via the context. A serialization failure
// (SQLSTATE 40001) means a concurrent writer won the same slot; it surfaces
// as Conflict and is never retried. Errors are terminal per request.
func (r *PoolRunner) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "begin transaction")
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, txKey, Querier(tx))); err != nil {
		if isSerializationFailure(err) {
			return apperr.Wrap(apperr.Conflict, err, "concurrent booking for the same slot")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return apperr.Wrap(apperr.Conflict, err, "concurrent booking for the same slot")
		}
		return apperr.Wrap(apperr.Persistence, err, "commit transaction")
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
