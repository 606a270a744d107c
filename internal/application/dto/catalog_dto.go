package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para crear un material.
type CreateMaterialRequest struct {
	ID         string          `json:"id"`
	Nama       string          `json:"nama"`
	HargaTotal decimal.Decimal `json:"harga_total"`
	JumlahUnit decimal.Decimal `json:"jumlah_unit"`
	Satuan     string          `json:"satuan"`
}

// UpdateMaterialRequest actualización parcial de un material.
type UpdateMaterialRequest struct {
	Nama       *string          `json:"nama"`
	HargaTotal *decimal.Decimal `json:"harga_total"`
	JumlahUnit *decimal.Decimal `json:"jumlah_unit"`
	Satuan     *string          `json:"satuan"`
}

// MaterialResponse salida de un material con su harga_satuan derivado.
type MaterialResponse struct {
	ID          string          `json:"id"`
	Nama        string          `json:"nama"`
	HargaTotal  decimal.Decimal `json:"harga_total"`
	JumlahUnit  decimal.Decimal `json:"jumlah_unit"`
	Satuan      string          `json:"satuan"`
	HargaSatuan decimal.Decimal `json:"harga_satuan"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MaterialListResponse lista paginada de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ID   string `json:"id"`
	Nama string `json:"nama"`
}

// UpdateProductRequest renombra un producto.
type UpdateProductRequest struct {
	Nama string `json:"nama"`
}

// ProductSummary producto en listados, sin BOM.
type ProductSummary struct {
	ID        string    `json:"id"`
	Nama      string    `json:"nama"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductSummary `json:"items"`
	Page  PageResponse     `json:"page"`
}

// AddBOMItemRequest agrega una línea de BOM a un producto.
type AddBOMItemRequest struct {
	MaterialID string          `json:"material_id"`
	Qty        decimal.Decimal `json:"qty"`
}

// BOMItemResponse línea de BOM persistida.
type BOMItemResponse struct {
	ID         int64           `json:"id"`
	MaterialID string          `json:"material_id"`
	Qty        decimal.Decimal `json:"qty"`
}

// AddExtraCostRequest agrega un costo extra plano.
type AddExtraCostRequest struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// ProductResponse salida de un producto con su BOM.
type ProductResponse struct {
	ID         string            `json:"id"`
	Nama       string            `json:"nama"`
	BOM        []BOMItemResponse `json:"bom"`
	ExtraCosts []ExtraCostItem   `json:"extra_costs"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// CreateMarketplaceRequest entrada para crear un marketplace.
type CreateMarketplaceRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MarketplaceResponse salida de un marketplace.
type MarketplaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	ID            string `json:"id"`
	MarketplaceID string `json:"marketplace_id"`
	Name          string `json:"name"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID            string    `json:"id"`
	MarketplaceID string    `json:"marketplace_id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCostTypeRequest entrada para crear un tipo de costo.
type CreateCostTypeRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CalcType string `json:"calc_type"`
	ApplyTo  string `json:"apply_to"`
}

// CostTypeResponse salida de un tipo de costo.
type CostTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CalcType string `json:"calc_type"`
	ApplyTo  string `json:"apply_to"`
}

// AddCostRequest asigna un tipo de costo a una tienda o a un store-product.
type AddCostRequest struct {
	CostTypeID string          `json:"cost_type_id"`
	Value      decimal.Decimal `json:"value"`
}

// CostResponse costo asignado.
type CostResponse struct {
	ID         int64           `json:"id"`
	CostTypeID string          `json:"cost_type_id"`
	Value      decimal.Decimal `json:"value"`
}

// CreateStoreProductRequest lista un producto en una tienda.
type CreateStoreProductRequest struct {
	StoreID   string          `json:"store_id"`
	ProductID string          `json:"product_id"`
	HargaJual decimal.Decimal `json:"harga_jual"`
}

// UpdateStoreProductRequest cambia el precio de venta de un listado.
type UpdateStoreProductRequest struct {
	HargaJual decimal.Decimal `json:"harga_jual"`
}

// AddDiscountRequest agrega un descuento a un store-product.
type AddDiscountRequest struct {
	DiscountType string          `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
}

// DiscountResponse descuento persistido.
type DiscountResponse struct {
	ID           int64           `json:"id"`
	DiscountType string          `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
}

// StoreProductResponse salida de un store-product con sus costos propios y descuentos.
type StoreProductResponse struct {
	ID        int64              `json:"id"`
	StoreID   string             `json:"store_id"`
	ProductID string             `json:"product_id"`
	HargaJual decimal.Decimal    `json:"harga_jual"`
	Costs     []CostResponse     `json:"costs"`
	Discounts []DiscountResponse `json:"discounts"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CreateAdRecordRequest entrada para registrar resultados de una campaña.
type CreateAdRecordRequest struct {
	StoreID    string           `json:"store_id"`
	ProductID  string           `json:"product_id"`
	Campaign   string           `json:"campaign"`
	Spend      decimal.Decimal  `json:"spend"`
	GMV        decimal.Decimal  `json:"gmv"`
	Orders     int64            `json:"orders"`
	TotalSales *decimal.Decimal `json:"total_sales"`
}

// AdRecordResponse registro de iklan con métricas derivadas (null si no están definidas).
type AdRecordResponse struct {
	ID         int64            `json:"id"`
	StoreID    string           `json:"store_id"`
	ProductID  string           `json:"product_id"`
	Campaign   string           `json:"campaign"`
	Spend      decimal.Decimal  `json:"spend"`
	GMV        decimal.Decimal  `json:"gmv"`
	Orders     int64            `json:"orders"`
	TotalSales *decimal.Decimal `json:"total_sales"`
	ROAS       *decimal.Decimal `json:"roas"`
	ACOS       *decimal.Decimal `json:"acos"`
	AOV        *decimal.Decimal `json:"aov"`
	CPA        *decimal.Decimal `json:"cpa"`
	TACoS      *decimal.Decimal `json:"tacos"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AdListResponse lista paginada de registros de iklan.
type AdListResponse struct {
	Items []AdRecordResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
