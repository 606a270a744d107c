package repository

import (
	"context"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// AdFilter filtros opcionales para listar registros de iklan.
type AdFilter struct {
	StoreID   string
	ProductID string
	Limit     int
	Offset    int
}

// AdRepository persistencia de AdRecord.
type AdRepository interface {
	Create(ctx context.Context, r *entity.AdRecord) error
	ListByStoreProduct(ctx context.Context, storeID, productID string) ([]entity.AdRecord, error)
	List(ctx context.Context, f AdFilter) ([]entity.AdRecord, error)
	Delete(ctx context.Context, id int64) error
}
