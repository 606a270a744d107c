package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreProduct un producto publicado en una tienda con su precio de venta. (store_id, product_id) es único.
type StoreProduct struct {
	ID        int64
	StoreID   string
	ProductID string
	SellPrice decimal.Decimal // harga_jual
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscountType tipo de descuento sobre harga_jual.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Valid indica si el tipo de descuento es conocido.
func (d DiscountType) Valid() bool { return d == DiscountPercent || d == DiscountFixed }

// Discount descuento activo de un store-product.
type Discount struct {
	ID             int64
	StoreProductID int64
	Type           DiscountType
	Value          decimal.Decimal // fracción de harga_jual o Rp
}
