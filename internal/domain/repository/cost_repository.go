package repository

import (
	"context"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// CostRepository persistencia de tipos de costo y de su asignación a tiendas y store-products.
// Los List* devuelven en orden de inserción.
type CostRepository interface {
	CreateCostType(ctx context.Context, ct *entity.CostType) error
	GetCostType(ctx context.Context, id string) (*entity.CostType, error)
	ListCostTypes(ctx context.Context) ([]entity.CostType, error)

	AddStoreCost(ctx context.Context, sc *entity.StoreCost) error
	ListStoreCosts(ctx context.Context, storeID string) ([]entity.StoreCost, error)
	DeleteStoreCost(ctx context.Context, storeID string, id int64) error

	AddStoreProductCost(ctx context.Context, spc *entity.StoreProductCost) error
	ListStoreProductCosts(ctx context.Context, storeProductID int64) ([]entity.StoreProductCost, error)
	DeleteStoreProductCost(ctx context.Context, storeProductID, id int64) error
}
