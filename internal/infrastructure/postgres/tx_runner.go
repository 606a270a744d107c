package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/marketplace-profit-api/internal/application/pricing"
)

var _ pricing.SnapshotRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

var snapshotOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// ReadSnapshot abre una transacción REPEATABLE READ de solo lectura y ejecuta fn con repos atados a ella:
// BOM, precios de material, costos e iklan se leen del mismo snapshot aunque haya ediciones concurrentes.
func (r *TxRunner) ReadSnapshot(ctx context.Context, fn func(repos pricing.Repositories) error) error {
	tx, err := r.pool.BeginTx(ctx, snapshotOptions)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(Repositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Repositories construye el set de repositorios del motor sobre q (pool o tx).
func Repositories(q Querier) pricing.Repositories {
	return pricing.Repositories{
		Materials:     NewMaterialRepository(q),
		Products:      NewProductRepository(q),
		Marketplaces:  NewMarketplaceRepository(q),
		Costs:         NewCostRepository(q),
		StoreProducts: NewStoreProductRepository(q),
		Ads:           NewAdRepository(q),
	}
}
