package pricing

import (
	"context"
	"fmt"

	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	engine "github.com/jhoicas/marketplace-profit-api/internal/domain/pricing"
)

func getProduct(ctx context.Context, r Repositories, id string) (*entity.Product, error) {
	p, err := r.Products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: produk '%s'", domain.ErrNotFound, id)
	}
	return p, nil
}

func getStore(ctx context.Context, r Repositories, id string) (*entity.Store, error) {
	s, err := r.Marketplaces.GetStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: toko '%s'", domain.ErrNotFound, id)
	}
	return s, nil
}

// computeHPP resuelve el BOM contra los precios de material vigentes.
func computeHPP(ctx context.Context, r Repositories, productID string) (*engine.HPPBreakdown, error) {
	items, err := r.Products.ListBOMItems(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("hpp: bom: %w", err)
	}
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.MaterialID] {
			seen[it.MaterialID] = true
			ids = append(ids, it.MaterialID)
		}
	}
	materials := make(map[string]*entity.Material, len(ids))
	if len(ids) > 0 {
		list, err := r.Materials.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("hpp: materials: %w", err)
		}
		for _, m := range list {
			materials[m.ID] = m
		}
	}
	extras, err := r.Products.ListExtraCosts(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("hpp: extra costs: %w", err)
	}
	return engine.ComputeHPP(items, materials, extras)
}

// costStructure reglas de tarifa efectivas y descuentos. sp puede ser nil (producto aún no listado).
func costStructure(ctx context.Context, r Repositories, storeID string, sp *entity.StoreProduct) ([]engine.FeeRule, []engine.DiscountRule, error) {
	storeCosts, err := r.Costs.ListStoreCosts(ctx, storeID)
	if err != nil {
		return nil, nil, fmt.Errorf("costs: store: %w", err)
	}
	var (
		productCosts []entity.StoreProductCost
		discounts    []entity.Discount
	)
	if sp != nil {
		if productCosts, err = r.Costs.ListStoreProductCosts(ctx, sp.ID); err != nil {
			return nil, nil, fmt.Errorf("costs: store product: %w", err)
		}
		if discounts, err = r.StoreProducts.ListDiscounts(ctx, sp.ID); err != nil {
			return nil, nil, fmt.Errorf("costs: discounts: %w", err)
		}
	}
	types, err := r.Costs.ListCostTypes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("costs: types: %w", err)
	}
	byID := make(map[string]entity.CostType, len(types))
	for _, ct := range types {
		byID[ct.ID] = ct
	}
	resolved, err := engine.EffectiveCosts(storeCosts, productCosts, byID)
	if err != nil {
		return nil, nil, err
	}
	return engine.RulesFromCosts(resolved), engine.DiscountsFromEntities(discounts), nil
}

func loadListingByID(ctx context.Context, r Repositories, storeProductID int64) (*listing, error) {
	sp, err := r.StoreProducts.GetByID(ctx, storeProductID)
	if err != nil {
		return nil, fmt.Errorf("get store product: %w", err)
	}
	if sp == nil {
		return nil, fmt.Errorf("%w: store product %d", domain.ErrNotFound, storeProductID)
	}
	return loadListing(ctx, r, sp)
}

func loadListing(ctx context.Context, r Repositories, sp *entity.StoreProduct) (*listing, error) {
	store, err := getStore(ctx, r, sp.StoreID)
	if err != nil {
		return nil, err
	}
	product, err := getProduct(ctx, r, sp.ProductID)
	if err != nil {
		return nil, err
	}
	hpp, err := computeHPP(ctx, r, product.ID)
	if err != nil {
		return nil, err
	}
	rules, discounts, err := costStructure(ctx, r, store.ID, sp)
	if err != nil {
		return nil, err
	}
	return &listing{sp: sp, store: store, product: product, hpp: hpp, rules: rules, discounts: discounts}, nil
}
