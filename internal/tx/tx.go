package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// Inject stores a transaction in the context
func Inject(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// FromContext retrieves the transaction from the context. Returns nil if not present.
func FromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// Run executes fn inside a database transaction. The transaction is made
// available to repositories through the context; it is committed when fn
// returns nil and rolled back on error or panic. Nothing committed by Run
// is observable until every write in fn has succeeded.
func Run(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	t, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			t.Rollback()
			panic(rec)
		}
	}()

	if err := fn(Inject(ctx, t)); err != nil {
		t.Rollback()
		return err
	}

	return t.Commit()
}
