package repository

import (
	"context"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// StoreProductRepository persistencia de productos listados en tiendas y sus descuentos.
type StoreProductRepository interface {
	Create(ctx context.Context, sp *entity.StoreProduct) error
	GetByID(ctx context.Context, id int64) (*entity.StoreProduct, error)
	GetByStoreAndProduct(ctx context.Context, storeID, productID string) (*entity.StoreProduct, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.StoreProduct, error)
	// UpdateSellPrice cambia harga_jual y updated_at.
	UpdateSellPrice(ctx context.Context, sp *entity.StoreProduct) error
	Delete(ctx context.Context, id int64) error

	AddDiscount(ctx context.Context, d *entity.Discount) error
	ListDiscounts(ctx context.Context, storeProductID int64) ([]entity.Discount, error)
	DeleteDiscount(ctx context.Context, storeProductID, id int64) error
}
