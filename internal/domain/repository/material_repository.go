package repository

import (
	"context"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (bahan baku).
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	// GetByIDs devuelve los materiales encontrados; los ids inexistentes simplemente no aparecen.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Material, error)
	Update(ctx context.Context, m *entity.Material) error
	List(ctx context.Context, limit, offset int) ([]*entity.Material, error)
	Delete(ctx context.Context, id string) error
}
