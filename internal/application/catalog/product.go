package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// CreateProduct crea un producto (SKU) sin BOM.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := firstErr(required("id", in.ID), required("nama", in.Nama)); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(in.ID)
	existing, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: produk '%s'", domain.ErrDuplicate, id)
	}
	now := uc.now()
	p := &entity.Product{ID: id, Name: in.Nama, CreatedAt: now, UpdatedAt: now}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p, nil, nil), nil
}

// GetProduct devuelve el producto con su BOM y costos extra.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	bom, err := uc.products.ListBOMItems(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get product: bom: %w", err)
	}
	extras, err := uc.products.ListExtraCosts(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get product: extra costs: %w", err)
	}
	return toProductResponse(p, bom, extras), nil
}

// ListProducts lista productos paginados, sin BOM.
func (uc *UseCase) ListProducts(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.products.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	items := make([]dto.ProductSummary, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductSummary{ID: p.ID, Nama: p.Name, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt})
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// UpdateProduct renombra el producto. El SKU no cambia.
func (uc *UseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := required("nama", in.Nama); err != nil {
		return nil, err
	}
	p, err := uc.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Nama
	p.UpdatedAt = uc.now()
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetProduct(ctx, p.ID)
}

// DeleteProduct elimina el producto con su BOM, costos extra, listados e iklan.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.getProduct(ctx, id); err != nil {
		return err
	}
	return uc.products.Delete(ctx, id)
}

// AddBOMItem agrega una línea de BOM. El material debe existir y qty ser positiva.
func (uc *UseCase) AddBOMItem(ctx context.Context, productID string, in dto.AddBOMItemRequest) (*dto.BOMItemResponse, error) {
	if err := firstErr(required("material_id", in.MaterialID), positive("qty", in.Qty)); err != nil {
		return nil, err
	}
	p, err := uc.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.getMaterial(ctx, in.MaterialID); err != nil {
		return nil, err
	}
	item := &entity.BOMItem{ProductID: p.ID, MaterialID: in.MaterialID, Qty: in.Qty}
	if err := uc.products.AddBOMItem(ctx, item); err != nil {
		return nil, err
	}
	return &dto.BOMItemResponse{ID: item.ID, MaterialID: item.MaterialID, Qty: item.Qty}, nil
}

// AddExtraCost agrega un costo plano al HPP del producto.
func (uc *UseCase) AddExtraCost(ctx context.Context, productID string, in dto.AddExtraCostRequest) (*dto.ExtraCostItem, error) {
	if err := firstErr(required("label", in.Label), nonNegative("value", in.Value)); err != nil {
		return nil, err
	}
	p, err := uc.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	ec := &entity.ExtraCost{ProductID: p.ID, Label: in.Label, Value: in.Value}
	if err := uc.products.AddExtraCost(ctx, ec); err != nil {
		return nil, err
	}
	return &dto.ExtraCostItem{ID: ec.ID, Label: ec.Label, Value: ec.Value}, nil
}

// DeleteBOMItem quita una línea del BOM del producto.
func (uc *UseCase) DeleteBOMItem(ctx context.Context, productID string, itemID int64) error {
	if itemID <= 0 {
		return domain.Invalid("item_id", "wajib diisi")
	}
	p, err := uc.getProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := uc.products.DeleteBOMItem(ctx, p.ID, itemID); err != nil {
		return fmt.Errorf("baris BOM %d: %w", itemID, err)
	}
	return nil
}

// DeleteExtraCost quita un costo extra del producto.
func (uc *UseCase) DeleteExtraCost(ctx context.Context, productID string, costID int64) error {
	if costID <= 0 {
		return domain.Invalid("cost_id", "wajib diisi")
	}
	p, err := uc.getProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := uc.products.DeleteExtraCost(ctx, p.ID, costID); err != nil {
		return fmt.Errorf("biaya lain %d: %w", costID, err)
	}
	return nil
}

func (uc *UseCase) getProduct(ctx context.Context, id string) (*entity.Product, error) {
	if err := required("product_id", id); err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: produk '%s'", domain.ErrNotFound, id)
	}
	return p, nil
}
