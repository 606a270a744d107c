package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/repository"
)

var _ repository.StoreProductRepository = (*StoreProductRepo)(nil)

// StoreProductRepo productos listados por tienda y sus descuentos.
type StoreProductRepo struct {
	q Querier
}

// NewStoreProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreProductRepository(q Querier) *StoreProductRepo {
	return &StoreProductRepo{q: q}
}

const storeProductColumns = `id, store_id, product_id, sell_price, created_at, updated_at`

func scanStoreProduct(row pgx.Row) (*entity.StoreProduct, error) {
	var sp entity.StoreProduct
	if err := row.Scan(&sp.ID, &sp.StoreID, &sp.ProductID, &sp.SellPrice, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
		return nil, err
	}
	return &sp, nil
}

// Create persiste el listado y completa su ID.
func (r *StoreProductRepo) Create(ctx context.Context, sp *entity.StoreProduct) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO store_products (store_id, product_id, sell_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		sp.StoreID, sp.ProductID, sp.SellPrice, sp.CreatedAt, sp.UpdatedAt,
	).Scan(&sp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: toko atau produk", domain.ErrNotFound)
		}
		return fmt.Errorf("insert store product: %w", err)
	}
	return nil
}

// GetByID obtiene un store-product por ID.
func (r *StoreProductRepo) GetByID(ctx context.Context, id int64) (*entity.StoreProduct, error) {
	sp, err := scanStoreProduct(r.q.QueryRow(ctx, `SELECT `+storeProductColumns+` FROM store_products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store product: %w", err)
	}
	return sp, nil
}

// GetByStoreAndProduct obtiene el listado del producto en la tienda.
func (r *StoreProductRepo) GetByStoreAndProduct(ctx context.Context, storeID, productID string) (*entity.StoreProduct, error) {
	sp, err := scanStoreProduct(r.q.QueryRow(ctx, `
		SELECT `+storeProductColumns+` FROM store_products
		WHERE store_id = $1 AND product_id = $2`, storeID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store product: %w", err)
	}
	return sp, nil
}

// ListByStore lista los productos de una tienda.
func (r *StoreProductRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.StoreProduct, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+storeProductColumns+` FROM store_products
		WHERE store_id = $1 ORDER BY id`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store products: %w", err)
	}
	defer rows.Close()
	var out []*entity.StoreProduct
	for rows.Next() {
		sp, err := scanStoreProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store product: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// UpdateSellPrice cambia el precio de venta del listado.
func (r *StoreProductRepo) UpdateSellPrice(ctx context.Context, sp *entity.StoreProduct) error {
	return execOne(ctx, r.q, "update store product",
		`UPDATE store_products SET sell_price = $2, updated_at = $3 WHERE id = $1`, sp.ID, sp.SellPrice, sp.UpdatedAt)
}

// Delete elimina el listado con sus costos y descuentos (cascada). Los registros de iklan se conservan.
func (r *StoreProductRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete store product", `DELETE FROM store_products WHERE id = $1`, id)
}

// AddDiscount agrega un descuento activo.
func (r *StoreProductRepo) AddDiscount(ctx context.Context, d *entity.Discount) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO discounts (store_product_id, discount_type, value) VALUES ($1, $2, $3)
		RETURNING id`,
		d.StoreProductID, string(d.Type), d.Value).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert discount: %w", err)
	}
	return nil
}

// ListDiscounts descuentos en orden de inserción.
func (r *StoreProductRepo) ListDiscounts(ctx context.Context, storeProductID int64) ([]entity.Discount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, store_product_id, discount_type, value FROM discounts
		WHERE store_product_id = $1 ORDER BY id`, storeProductID)
	if err != nil {
		return nil, fmt.Errorf("list discounts: %w", err)
	}
	defer rows.Close()
	var out []entity.Discount
	for rows.Next() {
		var d entity.Discount
		var typ string
		if err := rows.Scan(&d.ID, &d.StoreProductID, &typ, &d.Value); err != nil {
			return nil, fmt.Errorf("scan discount: %w", err)
		}
		d.Type = entity.DiscountType(typ)
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteDiscount elimina un descuento del store-product.
func (r *StoreProductRepo) DeleteDiscount(ctx context.Context, storeProductID, id int64) error {
	return execOne(ctx, r.q, "delete discount",
		`DELETE FROM discounts WHERE id = $1 AND store_product_id = $2`, id, storeProductID)
}
