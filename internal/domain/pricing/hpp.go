// Package pricing es el motor puro de costos y precios: HPP, tarifas de marketplace, pricing directo,
// reverse pricing y grading de iklan. No hace I/O; todo el dinero se maneja con shopspring/decimal.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// BOMLineCost costo de una línea de BOM con el precio unitario vigente del material.
type BOMLineCost struct {
	MaterialID   string
	MaterialName string
	MaterialUnit string
	Qty          decimal.Decimal
	UnitPrice    decimal.Decimal // harga_satuan
	Cost         decimal.Decimal // biaya_bahan = qty * harga_satuan
}

// HPPBreakdown resultado del Cost Aggregator.
type HPPBreakdown struct {
	Lines          []BOMLineCost
	ExtraCosts     []entity.ExtraCost
	TotalMaterials decimal.Decimal // total_bahan
	OtherCosts     decimal.Decimal // biaya_lain
	HPP            decimal.Decimal // total_bahan + biaya_lain
}

// ComputeHPP suma qty × harga_satuan de cada línea y los costos extra planos.
// Una línea cuyo material no existe en materials falla con ErrNotFound; nunca se cuenta como costo cero.
func ComputeHPP(items []entity.BOMItem, materials map[string]*entity.Material, extras []entity.ExtraCost) (*HPPBreakdown, error) {
	out := &HPPBreakdown{
		Lines:          make([]BOMLineCost, 0, len(items)),
		ExtraCosts:     extras,
		TotalMaterials: decimal.Zero,
		OtherCosts:     decimal.Zero,
	}
	for _, it := range items {
		m, ok := materials[it.MaterialID]
		if !ok || m == nil {
			return nil, fmt.Errorf("%w: bahan '%s' pada BOM produk '%s'", domain.ErrNotFound, it.MaterialID, it.ProductID)
		}
		unitPrice := m.UnitPrice()
		cost := it.Qty.Mul(unitPrice)
		out.TotalMaterials = out.TotalMaterials.Add(cost)
		out.Lines = append(out.Lines, BOMLineCost{
			MaterialID:   m.ID,
			MaterialName: m.Name,
			MaterialUnit: m.Unit,
			Qty:          it.Qty,
			UnitPrice:    unitPrice,
			Cost:         cost,
		})
	}
	for _, ec := range extras {
		out.OtherCosts = out.OtherCosts.Add(ec.Value)
	}
	out.HPP = out.TotalMaterials.Add(out.OtherCosts)
	return out, nil
}
