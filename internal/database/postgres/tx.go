package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// baseTx carries the shared transactional operations. The embedded
// queries run against the pgx.Tx, so every queries method is available
// inside the transaction.
type baseTx struct {
	queries
	tx pgx.Tx
}

func (t *baseTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *baseTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

type farmTx struct{ baseTx }

type animalTx struct{ baseTx }

type economyTx struct{ baseTx }

type worldTx struct{ baseTx }
