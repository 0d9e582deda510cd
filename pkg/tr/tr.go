package tr

import (
	"context"
	"database/sql"

	"github.com/shoplens/go-backend/pkg/e"
)

type ctxKey struct{}

// WithTx returns a context carrying the transaction.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// TxFromCtx extracts the transaction (*sql.Tx) from the context.
func TxFromCtx(ctx context.Context) (*sql.Tx, error) {
	tx, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
