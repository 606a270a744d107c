package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// CreateMarketplace registra un marketplace.
func (uc *UseCase) CreateMarketplace(ctx context.Context, in dto.CreateMarketplaceRequest) (*dto.MarketplaceResponse, error) {
	if err := firstErr(required("id", in.ID), required("name", in.Name)); err != nil {
		return nil, err
	}
	existing, err := uc.marketplaces.GetMarketplace(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("create marketplace: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: marketplace '%s'", domain.ErrDuplicate, in.ID)
	}
	m := &entity.Marketplace{ID: in.ID, Name: in.Name, CreatedAt: uc.now()}
	if err := uc.marketplaces.CreateMarketplace(ctx, m); err != nil {
		return nil, err
	}
	out := toMarketplaceResponse(m)
	return &out, nil
}

// ListMarketplaces lista todos los marketplaces por nombre.
func (uc *UseCase) ListMarketplaces(ctx context.Context) ([]dto.MarketplaceResponse, error) {
	list, err := uc.marketplaces.ListMarketplaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list marketplaces: %w", err)
	}
	out := make([]dto.MarketplaceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMarketplaceResponse(m))
	}
	return out, nil
}

// CreateStore registra una tienda dentro de un marketplace existente.
func (uc *UseCase) CreateStore(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if err := firstErr(required("id", in.ID), required("marketplace_id", in.MarketplaceID), required("name", in.Name)); err != nil {
		return nil, err
	}
	mk, err := uc.marketplaces.GetMarketplace(ctx, in.MarketplaceID)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	if mk == nil {
		return nil, fmt.Errorf("%w: marketplace '%s'", domain.ErrNotFound, in.MarketplaceID)
	}
	existing, err := uc.marketplaces.GetStore(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: toko '%s'", domain.ErrDuplicate, in.ID)
	}
	s := &entity.Store{ID: in.ID, MarketplaceID: mk.ID, Name: in.Name, CreatedAt: uc.now()}
	if err := uc.marketplaces.CreateStore(ctx, s); err != nil {
		return nil, err
	}
	out := toStoreResponse(s)
	return &out, nil
}

// GetStore obtiene una tienda por id.
func (uc *UseCase) GetStore(ctx context.Context, id string) (*dto.StoreResponse, error) {
	s, err := uc.getStore(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toStoreResponse(s)
	return &out, nil
}

// ListStores lista tiendas; marketplaceID vacío lista todas. Un marketplace inexistente es NotFound.
func (uc *UseCase) ListStores(ctx context.Context, marketplaceID string) ([]dto.StoreResponse, error) {
	if marketplaceID != "" {
		mk, err := uc.marketplaces.GetMarketplace(ctx, marketplaceID)
		if err != nil {
			return nil, fmt.Errorf("list stores: %w", err)
		}
		if mk == nil {
			return nil, fmt.Errorf("%w: marketplace '%s'", domain.ErrNotFound, marketplaceID)
		}
	}
	list, err := uc.marketplaces.ListStores(ctx, marketplaceID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStoreResponse(s))
	}
	return out, nil
}

// ListCostTypes lista los tipos de costo.
func (uc *UseCase) ListCostTypes(ctx context.Context) ([]dto.CostTypeResponse, error) {
	list, err := uc.costs.ListCostTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cost types: %w", err)
	}
	out := make([]dto.CostTypeResponse, 0, len(list))
	for i := range list {
		out = append(out, *toCostTypeResponse(&list[i]))
	}
	return out, nil
}

// CreateCostType registra un tipo de costo. apply_to vacío equivale a "price".
func (uc *UseCase) CreateCostType(ctx context.Context, in dto.CreateCostTypeRequest) (*dto.CostTypeResponse, error) {
	if in.ApplyTo == "" {
		in.ApplyTo = string(entity.ApplyToPrice)
	}
	if err := firstErr(required("id", in.ID), required("name", in.Name)); err != nil {
		return nil, err
	}
	ct := &entity.CostType{
		ID:       in.ID,
		Name:     in.Name,
		CalcType: entity.CalcType(in.CalcType),
		ApplyTo:  entity.ApplyTo(in.ApplyTo),
	}
	if !ct.CalcType.Valid() {
		return nil, domain.Invalid("calc_type", "harus 'percent' atau 'fixed'")
	}
	if !ct.ApplyTo.Valid() {
		return nil, domain.Invalid("apply_to", "harus 'price' atau 'after_discount'")
	}
	existing, err := uc.costs.GetCostType(ctx, ct.ID)
	if err != nil {
		return nil, fmt.Errorf("create cost type: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: tipe biaya '%s'", domain.ErrDuplicate, ct.ID)
	}
	if err := uc.costs.CreateCostType(ctx, ct); err != nil {
		return nil, err
	}
	return toCostTypeResponse(ct), nil
}

// AddStoreCost asigna un costo a todos los productos de la tienda.
func (uc *UseCase) AddStoreCost(ctx context.Context, storeID string, in dto.AddCostRequest) (*dto.CostResponse, error) {
	store, err := uc.getStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := uc.validateCost(ctx, in); err != nil {
		return nil, err
	}
	sc := &entity.StoreCost{StoreID: store.ID, CostTypeID: in.CostTypeID, Value: in.Value}
	if err := uc.costs.AddStoreCost(ctx, sc); err != nil {
		return nil, err
	}
	return &dto.CostResponse{ID: sc.ID, CostTypeID: sc.CostTypeID, Value: sc.Value}, nil
}

// ListStoreCosts costos de la tienda en orden de aplicación.
func (uc *UseCase) ListStoreCosts(ctx context.Context, storeID string) ([]dto.CostResponse, error) {
	store, err := uc.getStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	list, err := uc.costs.ListStoreCosts(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("list store costs: %w", err)
	}
	out := make([]dto.CostResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CostResponse{ID: c.ID, CostTypeID: c.CostTypeID, Value: c.Value})
	}
	return out, nil
}

// DeleteStoreCost quita un costo de la tienda.
func (uc *UseCase) DeleteStoreCost(ctx context.Context, storeID string, costID int64) error {
	if costID <= 0 {
		return domain.Invalid("cost_id", "wajib diisi")
	}
	store, err := uc.getStore(ctx, storeID)
	if err != nil {
		return err
	}
	if err := uc.costs.DeleteStoreCost(ctx, store.ID, costID); err != nil {
		return fmt.Errorf("biaya toko %d: %w", costID, err)
	}
	return nil
}

// validateCost el tipo debe existir; los valores percent son fracciones en [0, 1].
func (uc *UseCase) validateCost(ctx context.Context, in dto.AddCostRequest) error {
	if err := firstErr(required("cost_type_id", in.CostTypeID), nonNegative("value", in.Value)); err != nil {
		return err
	}
	ct, err := uc.costs.GetCostType(ctx, in.CostTypeID)
	if err != nil {
		return fmt.Errorf("get cost type: %w", err)
	}
	if ct == nil {
		return fmt.Errorf("%w: tipe biaya '%s'", domain.ErrNotFound, in.CostTypeID)
	}
	if ct.CalcType == entity.CalcTypePercent {
		return fraction("value", in.Value)
	}
	return nil
}

func (uc *UseCase) getStore(ctx context.Context, id string) (*entity.Store, error) {
	if err := required("store_id", id); err != nil {
		return nil, err
	}
	s, err := uc.marketplaces.GetStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: toko '%s'", domain.ErrNotFound, id)
	}
	return s, nil
}
