package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto (SKU). El HPP no se guarda: se recalcula desde el BOM y los costos extra
// para que un cambio de precio de material afecte a todos los productos que lo usan.
type Product struct {
	ID        string // SKU
	Name      string // nama
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BOMItem una línea del bill of materials: cuánto material consume una unidad de producto.
type BOMItem struct {
	ID         int64
	ProductID  string
	MaterialID string
	Qty        decimal.Decimal
}

// ExtraCost costo plano (Rp) que se suma al HPP, e.g. packing u overhead.
type ExtraCost struct {
	ID        int64
	ProductID string
	Label     string
	Value     decimal.Decimal
}
