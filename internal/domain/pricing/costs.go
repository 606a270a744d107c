package pricing

import (
	"fmt"

	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// EffectiveCosts combina los costos de tienda con los del store-product.
// Orden: costos de tienda en orden de inserción (un costo de producto del mismo tipo ocupa su lugar),
// luego los costos solo de producto en orden de inserción.
func EffectiveCosts(storeCosts []entity.StoreCost, productCosts []entity.StoreProductCost, types map[string]entity.CostType) ([]entity.ResolvedCost, error) {
	override := make(map[string]int, len(productCosts))
	for i, pc := range productCosts {
		override[pc.CostTypeID] = i
	}
	used := make(map[int]bool, len(productCosts))
	out := make([]entity.ResolvedCost, 0, len(storeCosts)+len(productCosts))

	resolve := func(costTypeID string) (entity.CostType, error) {
		ct, ok := types[costTypeID]
		if !ok {
			return entity.CostType{}, fmt.Errorf("%w: tipe biaya '%s'", domain.ErrNotFound, costTypeID)
		}
		return ct, nil
	}

	for _, sc := range storeCosts {
		ct, err := resolve(sc.CostTypeID)
		if err != nil {
			return nil, err
		}
		value := sc.Value
		if i, ok := override[sc.CostTypeID]; ok {
			value = productCosts[i].Value
			used[i] = true
		}
		out = append(out, entity.ResolvedCost{CostType: ct, Value: value})
	}
	for i, pc := range productCosts {
		if used[i] {
			continue
		}
		ct, err := resolve(pc.CostTypeID)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.ResolvedCost{CostType: ct, Value: pc.Value})
	}
	return out, nil
}
