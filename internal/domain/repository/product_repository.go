package repository

import (
	"context"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product, su BOM y sus costos extra.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	// Delete borra el producto con su BOM, costos extra, listados e iklan (ON DELETE CASCADE).
	Delete(ctx context.Context, id string) error

	AddBOMItem(ctx context.Context, item *entity.BOMItem) error
	ListBOMItems(ctx context.Context, productID string) ([]entity.BOMItem, error)
	DeleteBOMItem(ctx context.Context, productID string, itemID int64) error

	AddExtraCost(ctx context.Context, ec *entity.ExtraCost) error
	ListExtraCosts(ctx context.Context, productID string) ([]entity.ExtraCost, error)
	DeleteExtraCost(ctx context.Context, productID string, costID int64) error
}
