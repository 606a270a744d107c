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

var _ repository.MarketplaceRepository = (*MarketplaceRepo)(nil)

// MarketplaceRepo marketplaces y tiendas sobre PostgreSQL.
type MarketplaceRepo struct {
	q Querier
}

// NewMarketplaceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMarketplaceRepository(q Querier) *MarketplaceRepo {
	return &MarketplaceRepo{q: q}
}

// CreateMarketplace persiste un marketplace.
func (r *MarketplaceRepo) CreateMarketplace(ctx context.Context, m *entity.Marketplace) error {
	_, err := r.q.Exec(ctx, `INSERT INTO marketplaces (id, name, created_at) VALUES ($1, $2, $3)`,
		m.ID, m.Name, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert marketplace: %w", err)
	}
	return nil
}

// GetMarketplace obtiene un marketplace por id.
func (r *MarketplaceRepo) GetMarketplace(ctx context.Context, id string) (*entity.Marketplace, error) {
	var m entity.Marketplace
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM marketplaces WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marketplace: %w", err)
	}
	return &m, nil
}

// ListMarketplaces lista todos los marketplaces.
func (r *MarketplaceRepo) ListMarketplaces(ctx context.Context) ([]*entity.Marketplace, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM marketplaces ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list marketplaces: %w", err)
	}
	defer rows.Close()
	var out []*entity.Marketplace
	for rows.Next() {
		var m entity.Marketplace
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan marketplace: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// CreateStore persiste una tienda.
func (r *MarketplaceRepo) CreateStore(ctx context.Context, s *entity.Store) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stores (id, marketplace_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.MarketplaceID, s.Name, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: marketplace '%s'", domain.ErrNotFound, s.MarketplaceID)
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetStore obtiene una tienda por id.
func (r *MarketplaceRepo) GetStore(ctx context.Context, id string) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx, `SELECT id, marketplace_id, name, created_at FROM stores WHERE id = $1`, id).
		Scan(&s.ID, &s.MarketplaceID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// ListStores lista tiendas; marketplaceID vacío lista todas.
func (r *MarketplaceRepo) ListStores(ctx context.Context, marketplaceID string) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, marketplace_id, name, created_at FROM stores
		WHERE ($1 = '' OR marketplace_id = $1)
		ORDER BY name, id`, marketplaceID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var out []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.MarketplaceID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
