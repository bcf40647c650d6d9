// Package trm carries a sql transaction through context so repository
// methods compose into one atomic unit without knowing whether a
// transaction is open.
package trm

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type ctxKey struct{}

func inject(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// ExtractTx returns the transaction bound to ctx, or nil when the caller
// runs outside of one.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	if tx, ok := ctx.Value(ctxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return nil
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type manager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &manager{db: db}
}

func (m *manager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	return inject(ctx, tx), tx, nil
}

// Do runs callback inside a transaction, committing on success and
// rolling back on error.
func (m *manager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	txCtx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := callback(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
