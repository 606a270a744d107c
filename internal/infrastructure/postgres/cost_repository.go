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

var _ repository.CostRepository = (*CostRepo)(nil)

// CostRepo tipos de costo y su asignación a tiendas / store-products.
type CostRepo struct {
	q Querier
}

// NewCostRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCostRepository(q Querier) *CostRepo {
	return &CostRepo{q: q}
}

// CreateCostType persiste un tipo de costo.
func (r *CostRepo) CreateCostType(ctx context.Context, ct *entity.CostType) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO cost_types (id, name, calc_type, apply_to) VALUES ($1, $2, $3, $4)`,
		ct.ID, ct.Name, string(ct.CalcType), string(ct.ApplyTo))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cost type: %w", err)
	}
	return nil
}

// GetCostType obtiene un tipo de costo por id.
func (r *CostRepo) GetCostType(ctx context.Context, id string) (*entity.CostType, error) {
	var ct entity.CostType
	var calc, apply string
	err := r.q.QueryRow(ctx, `SELECT id, name, calc_type, apply_to FROM cost_types WHERE id = $1`, id).
		Scan(&ct.ID, &ct.Name, &calc, &apply)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost type: %w", err)
	}
	ct.CalcType = entity.CalcType(calc)
	ct.ApplyTo = entity.ApplyTo(apply)
	return &ct, nil
}

// ListCostTypes lista todos los tipos de costo.
func (r *CostRepo) ListCostTypes(ctx context.Context) ([]entity.CostType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, calc_type, apply_to FROM cost_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cost types: %w", err)
	}
	defer rows.Close()
	var out []entity.CostType
	for rows.Next() {
		var ct entity.CostType
		var calc, apply string
		if err := rows.Scan(&ct.ID, &ct.Name, &calc, &apply); err != nil {
			return nil, fmt.Errorf("scan cost type: %w", err)
		}
		ct.CalcType = entity.CalcType(calc)
		ct.ApplyTo = entity.ApplyTo(apply)
		out = append(out, ct)
	}
	return out, rows.Err()
}

// AddStoreCost asigna un costo a una tienda.
func (r *CostRepo) AddStoreCost(ctx context.Context, sc *entity.StoreCost) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO store_costs (store_id, cost_type_id, value) VALUES ($1, $2, $3)
		RETURNING id`,
		sc.StoreID, sc.CostTypeID, sc.Value).Scan(&sc.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: toko atau jenis biaya", domain.ErrNotFound)
		}
		return fmt.Errorf("insert store cost: %w", err)
	}
	return nil
}

// ListStoreCosts costos de la tienda en orden de inserción.
func (r *CostRepo) ListStoreCosts(ctx context.Context, storeID string) ([]entity.StoreCost, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, store_id, cost_type_id, value FROM store_costs
		WHERE store_id = $1 ORDER BY id`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store costs: %w", err)
	}
	defer rows.Close()
	var out []entity.StoreCost
	for rows.Next() {
		var sc entity.StoreCost
		if err := rows.Scan(&sc.ID, &sc.StoreID, &sc.CostTypeID, &sc.Value); err != nil {
			return nil, fmt.Errorf("scan store cost: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// DeleteStoreCost quita un costo de la tienda.
func (r *CostRepo) DeleteStoreCost(ctx context.Context, storeID string, id int64) error {
	return execOne(ctx, r.q, "delete store cost",
		`DELETE FROM store_costs WHERE id = $1 AND store_id = $2`, id, storeID)
}

// AddStoreProductCost asigna un costo específico a un store-product. Un tipo por store-product.
func (r *CostRepo) AddStoreProductCost(ctx context.Context, spc *entity.StoreProductCost) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO store_product_costs (store_product_id, cost_type_id, value) VALUES ($1, $2, $3)
		RETURNING id`,
		spc.StoreProductID, spc.CostTypeID, spc.Value).Scan(&spc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: produk toko atau jenis biaya", domain.ErrNotFound)
		}
		return fmt.Errorf("insert store product cost: %w", err)
	}
	return nil
}

// ListStoreProductCosts costos del store-product en orden de inserción.
func (r *CostRepo) ListStoreProductCosts(ctx context.Context, storeProductID int64) ([]entity.StoreProductCost, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, store_product_id, cost_type_id, value FROM store_product_costs
		WHERE store_product_id = $1 ORDER BY id`, storeProductID)
	if err != nil {
		return nil, fmt.Errorf("list store product costs: %w", err)
	}
	defer rows.Close()
	var out []entity.StoreProductCost
	for rows.Next() {
		var c entity.StoreProductCost
		if err := rows.Scan(&c.ID, &c.StoreProductID, &c.CostTypeID, &c.Value); err != nil {
			return nil, fmt.Errorf("scan store product cost: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteStoreProductCost quita el costo específico; vuelve a aplicar el de la tienda si existe.
func (r *CostRepo) DeleteStoreProductCost(ctx context.Context, storeProductID, id int64) error {
	return execOne(ctx, r.q, "delete store product cost",
		`DELETE FROM store_product_costs WHERE id = $1 AND store_product_id = $2`, id, storeProductID)
}
