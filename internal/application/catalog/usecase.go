// Package catalog casos de uso CRUD del catálogo: materiales, productos con BOM, marketplaces, tiendas,
// tipos de costo, store-products con sus costos y descuentos, y registros de iklan.
package catalog

import (
	"time"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/repository"
)

// UseCase agrupa las operaciones de catálogo. Valida la entrada antes de persistir.
type UseCase struct {
	materials     repository.MaterialRepository
	products      repository.ProductRepository
	marketplaces  repository.MarketplaceRepository
	costs         repository.CostRepository
	storeProducts repository.StoreProductRepository
	ads           repository.AdRepository
	now           func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	materials repository.MaterialRepository,
	products repository.ProductRepository,
	marketplaces repository.MarketplaceRepository,
	costs repository.CostRepository,
	storeProducts repository.StoreProductRepository,
	ads repository.AdRepository,
) *UseCase {
	return &UseCase{
		materials:     materials,
		products:      products,
		marketplaces:  marketplaces,
		costs:         costs,
		storeProducts: storeProducts,
		ads:           ads,
		now:           time.Now,
	}
}
