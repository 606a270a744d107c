package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// CreateMaterial crea un material. El id lo define el usuario (slug) y debe ser único.
func (uc *UseCase) CreateMaterial(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if err := firstErr(
		required("id", in.ID),
		required("nama", in.Nama),
		required("satuan", in.Satuan),
		nonNegative("harga_total", in.HargaTotal),
		positive("jumlah_unit", in.JumlahUnit),
	); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(in.ID)
	existing, err := uc.materials.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: bahan '%s'", domain.ErrDuplicate, id)
	}
	now := uc.now()
	m := &entity.Material{
		ID:         id,
		Name:       in.Nama,
		TotalPrice: in.HargaTotal,
		UnitCount:  in.JumlahUnit,
		Unit:       in.Satuan,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetMaterial obtiene un material por id.
func (uc *UseCase) GetMaterial(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.getMaterial(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// ListMaterials lista materiales paginados.
func (uc *UseCase) ListMaterials(ctx context.Context, page dto.PageRequest) (*dto.MaterialListResponse, error) {
	page.DefaultPage()
	list, err := uc.materials.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// UpdateMaterial actualización parcial. El nuevo precio afecta de inmediato el HPP de todos los productos que lo usan.
func (uc *UseCase) UpdateMaterial(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.getMaterial(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nama != nil {
		if err := required("nama", *in.Nama); err != nil {
			return nil, err
		}
		m.Name = *in.Nama
	}
	if in.Satuan != nil {
		if err := required("satuan", *in.Satuan); err != nil {
			return nil, err
		}
		m.Unit = *in.Satuan
	}
	if in.HargaTotal != nil {
		if err := nonNegative("harga_total", *in.HargaTotal); err != nil {
			return nil, err
		}
		m.TotalPrice = *in.HargaTotal
	}
	if in.JumlahUnit != nil {
		if err := positive("jumlah_unit", *in.JumlahUnit); err != nil {
			return nil, err
		}
		m.UnitCount = *in.JumlahUnit
	}
	m.UpdatedAt = uc.now()
	if err := uc.materials.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// DeleteMaterial elimina un material. Falla si algún BOM todavía lo usa.
func (uc *UseCase) DeleteMaterial(ctx context.Context, id string) error {
	if _, err := uc.getMaterial(ctx, id); err != nil {
		return err
	}
	return uc.materials.Delete(ctx, id)
}

func (uc *UseCase) getMaterial(ctx context.Context, id string) (*entity.Material, error) {
	if err := required("id", id); err != nil {
		return nil, err
	}
	m, err := uc.materials.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: bahan '%s'", domain.ErrNotFound, id)
	}
	return m, nil
}
