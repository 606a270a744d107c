package repository

import (
	"context"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// MarketplaceRepository persistencia de marketplaces y sus tiendas.
type MarketplaceRepository interface {
	CreateMarketplace(ctx context.Context, m *entity.Marketplace) error
	GetMarketplace(ctx context.Context, id string) (*entity.Marketplace, error)
	ListMarketplaces(ctx context.Context) ([]*entity.Marketplace, error)

	CreateStore(ctx context.Context, s *entity.Store) error
	GetStore(ctx context.Context, id string) (*entity.Store, error)
	ListStores(ctx context.Context, marketplaceID string) ([]*entity.Store, error)
}
