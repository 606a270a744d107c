package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/repository"
)

var _ repository.AdRepository = (*AdRepo)(nil)

// AdRepo registros de iklan sobre PostgreSQL.
type AdRepo struct {
	q Querier
}

// NewAdRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdRepository(q Querier) *AdRepo {
	return &AdRepo{q: q}
}

const adColumns = `id, store_id, product_id, campaign, spend, gmv, orders, total_sales, created_at`

// Create persiste un registro de campaña.
func (r *AdRepo) Create(ctx context.Context, a *entity.AdRecord) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ad_records (store_id, product_id, campaign, spend, gmv, orders, total_sales, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		a.StoreID, a.ProductID, a.Campaign, a.Spend, a.GMV, a.Orders, a.TotalSales, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: toko atau produk", domain.ErrNotFound)
		}
		return fmt.Errorf("insert ad record: %w", err)
	}
	return nil
}

// ListByStoreProduct todos los registros del par en orden de inserción.
func (r *AdRepo) ListByStoreProduct(ctx context.Context, storeID, productID string) ([]entity.AdRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+adColumns+` FROM ad_records
		WHERE store_id = $1 AND product_id = $2 ORDER BY id`, storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("list ad records: %w", err)
	}
	defer rows.Close()
	return collectAds(rows)
}

// List lista registros con filtros opcionales.
func (r *AdRepo) List(ctx context.Context, f repository.AdFilter) ([]entity.AdRecord, error) {
	var where []string
	var args []interface{}
	if f.StoreID != "" {
		args = append(args, f.StoreID)
		where = append(where, fmt.Sprintf("store_id = $%d", len(args)))
	}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}
	query := `SELECT ` + adColumns + ` FROM ad_records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ad records: %w", err)
	}
	defer rows.Close()
	return collectAds(rows)
}

// Delete elimina un registro de iklan.
func (r *AdRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete ad record", `DELETE FROM ad_records WHERE id = $1`, id)
}

func collectAds(rows pgx.Rows) ([]entity.AdRecord, error) {
	var out []entity.AdRecord
	for rows.Next() {
		var a entity.AdRecord
		if err := rows.Scan(&a.ID, &a.StoreID, &a.ProductID, &a.Campaign, &a.Spend, &a.GMV, &a.Orders, &a.TotalSales, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ad record: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
