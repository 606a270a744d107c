package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/repository"
)

// CreateAdRecord registra el resultado de una campaña para un par (store, product) existente.
func (uc *UseCase) CreateAdRecord(ctx context.Context, in dto.CreateAdRecordRequest) (*dto.AdRecordResponse, error) {
	if err := firstErr(nonNegative("spend", in.Spend), nonNegative("gmv", in.GMV)); err != nil {
		return nil, err
	}
	if in.Orders < 0 {
		return nil, domain.Invalid("orders", "tidak boleh negatif")
	}
	if in.TotalSales != nil {
		if err := nonNegative("total_sales", *in.TotalSales); err != nil {
			return nil, err
		}
	}
	store, err := uc.getStore(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	product, err := uc.getProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	r := &entity.AdRecord{
		StoreID:    store.ID,
		ProductID:  product.ID,
		Campaign:   in.Campaign,
		Spend:      in.Spend,
		GMV:        in.GMV,
		Orders:     in.Orders,
		TotalSales: in.TotalSales,
		CreatedAt:  uc.now(),
	}
	if err := uc.ads.Create(ctx, r); err != nil {
		return nil, err
	}
	return toAdRecordResponse(r), nil
}

// ListAdRecords lista registros de iklan con sus métricas derivadas.
func (uc *UseCase) ListAdRecords(ctx context.Context, storeID, productID string, page dto.PageRequest) (*dto.AdListResponse, error) {
	page.DefaultPage()
	list, err := uc.ads.List(ctx, repository.AdFilter{StoreID: storeID, ProductID: productID, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	items := make([]dto.AdRecordResponse, 0, len(list))
	for i := range list {
		items = append(items, *toAdRecordResponse(&list[i]))
	}
	return &dto.AdListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// DeleteAdRecord elimina un registro de iklan (por ejemplo una importación duplicada).
func (uc *UseCase) DeleteAdRecord(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Invalid("id", "wajib diisi")
	}
	if err := uc.ads.Delete(ctx, id); err != nil {
		return fmt.Errorf("iklan %d: %w", id, err)
	}
	return nil
}
