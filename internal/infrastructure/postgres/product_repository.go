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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos paginados.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM products
		ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update cambia el nombre del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return execOne(ctx, r.q, "update product",
		`UPDATE products SET name = $2, updated_at = $3 WHERE id = $1`, p.ID, p.Name, p.UpdatedAt)
}

// Delete elimina el producto; BOM, costos extra, listados e iklan caen por cascada.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete product", `DELETE FROM products WHERE id = $1`, id)
}

// AddBOMItem inserta una línea de BOM y completa su ID.
func (r *ProductRepo) AddBOMItem(ctx context.Context, item *entity.BOMItem) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO bom_items (product_id, material_id, qty) VALUES ($1, $2, $3)
		RETURNING id`,
		item.ProductID, item.MaterialID, item.Qty,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: produk atau bahan tidak ada", domain.ErrNotFound)
		}
		return fmt.Errorf("insert bom item: %w", err)
	}
	return nil
}

// ListBOMItems líneas del BOM en orden de inserción.
func (r *ProductRepo) ListBOMItems(ctx context.Context, productID string) ([]entity.BOMItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, material_id, qty FROM bom_items
		WHERE product_id = $1 ORDER BY id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list bom items: %w", err)
	}
	defer rows.Close()
	var out []entity.BOMItem
	for rows.Next() {
		var it entity.BOMItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.MaterialID, &it.Qty); err != nil {
			return nil, fmt.Errorf("scan bom item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// DeleteBOMItem elimina una línea solo si pertenece al producto.
func (r *ProductRepo) DeleteBOMItem(ctx context.Context, productID string, itemID int64) error {
	return execOne(ctx, r.q, "delete bom item",
		`DELETE FROM bom_items WHERE id = $1 AND product_id = $2`, itemID, productID)
}

// AddExtraCost inserta un costo extra y completa su ID.
func (r *ProductRepo) AddExtraCost(ctx context.Context, ec *entity.ExtraCost) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO extra_costs (product_id, label, value) VALUES ($1, $2, $3)
		RETURNING id`,
		ec.ProductID, ec.Label, ec.Value,
	).Scan(&ec.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert extra cost: %w", err)
	}
	return nil
}

// ListExtraCosts costos extra en orden de inserción.
func (r *ProductRepo) ListExtraCosts(ctx context.Context, productID string) ([]entity.ExtraCost, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, label, value FROM extra_costs
		WHERE product_id = $1 ORDER BY id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list extra costs: %w", err)
	}
	defer rows.Close()
	var out []entity.ExtraCost
	for rows.Next() {
		var ec entity.ExtraCost
		if err := rows.Scan(&ec.ID, &ec.ProductID, &ec.Label, &ec.Value); err != nil {
			return nil, fmt.Errorf("scan extra cost: %w", err)
		}
		out = append(out, ec)
	}
	return out, rows.Err()
}

// DeleteExtraCost elimina un costo extra solo si pertenece al producto.
func (r *ProductRepo) DeleteExtraCost(ctx context.Context, productID string, costID int64) error {
	return execOne(ctx, r.q, "delete extra cost",
		`DELETE FROM extra_costs WHERE id = $1 AND product_id = $2`, costID, productID)
}
