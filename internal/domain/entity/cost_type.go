package entity

import "github.com/shopspring/decimal"

// CalcType cómo se calcula un costo de marketplace.
type CalcType string

// ApplyTo base sobre la que se aplica un costo porcentual.
type ApplyTo string

const (
	CalcTypePercent CalcType = "percent"
	CalcTypeFixed   CalcType = "fixed"

	ApplyToPrice         ApplyTo = "price"
	ApplyToAfterDiscount ApplyTo = "after_discount"
)

// Valid indica si el tipo de cálculo es conocido.
func (c CalcType) Valid() bool { return c == CalcTypePercent || c == CalcTypeFixed }

// Valid indica si la base es conocida.
func (a ApplyTo) Valid() bool { return a == ApplyToPrice || a == ApplyToAfterDiscount }

// CostType tipo de costo de marketplace (comisión admin, biaya layanan, ongkir...).
type CostType struct {
	ID       string
	Name     string
	CalcType CalcType
	ApplyTo  ApplyTo
}

// StoreCost costo que aplica a todos los productos de una tienda.
type StoreCost struct {
	ID         int64
	StoreID    string
	CostTypeID string
	Value      decimal.Decimal // fracción (0.05) si es percent, Rp si es fixed
}

// StoreProductCost costo específico de un producto en una tienda. Reemplaza al StoreCost del mismo tipo.
type StoreProductCost struct {
	ID             int64
	StoreProductID int64
	CostTypeID     string
	Value          decimal.Decimal
}

// ResolvedCost un costo con su tipo ya resuelto (lo que consume el motor de pricing).
type ResolvedCost struct {
	CostType CostType
	Value    decimal.Decimal
}
