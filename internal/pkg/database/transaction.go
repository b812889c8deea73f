package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// Transactor runs a named unit of work inside a database transaction.
// Services depend on this port so flows can be exercised without a
// live database.
type Transactor interface {
	InTx(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

type txKey struct{}

// InTx begins a transaction, stashes it in the context for GetQuerier,
// and commits when fn returns nil. Any error or panic rolls back.
func (db *DB) InTx(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", name, err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback during panic recovery", "action", name, "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%s: rollback error: %v (original error: %w)", name, rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", name, err)
	}
	return nil
}

// GetQuerier returns the ambient transaction when present, the pool
// otherwise. Repositories call this so the same code serves both
// transactional and standalone reads.
func GetQuerier(ctx context.Context, db *DB) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
