// Package postgres implements the repository interfaces over a pgx
// connection pool.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mossvale/farmstead/internal/repository"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx so query helpers can
// run inside or outside a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queries holds the hand-written SQL operations. All repository and
// transaction types embed it with the appropriate executor.
type queries struct {
	db dbtx
}

// Repository implements the repository interfaces backed by PostgreSQL.
type Repository struct {
	queries
	pool *pgxpool.Pool
}

// NewRepository creates a Repository over the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{queries: queries{db: pool}, pool: pool}
}

func (r *Repository) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return tx, nil
}

// BeginTx starts a base transaction.
func (r *Repository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &baseTx{queries: queries{db: tx}, tx: tx}, nil
}

// BeginFarmTx starts a transaction for field operations.
func (r *Repository) BeginFarmTx(ctx context.Context) (repository.FarmTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &farmTx{baseTx{queries: queries{db: tx}, tx: tx}}, nil
}

// BeginAnimalTx starts a transaction for livestock operations.
func (r *Repository) BeginAnimalTx(ctx context.Context) (repository.AnimalTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &animalTx{baseTx{queries: queries{db: tx}, tx: tx}}, nil
}

// BeginEconomyTx starts a transaction for market operations.
func (r *Repository) BeginEconomyTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &economyTx{baseTx{queries: queries{db: tx}, tx: tx}}, nil
}

// BeginWorldTx starts a transaction for day-cycle operations.
func (r *Repository) BeginWorldTx(ctx context.Context) (repository.WorldTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &worldTx{baseTx{queries: queries{db: tx}, tx: tx}}, nil
}
