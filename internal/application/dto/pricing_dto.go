package dto

import "github.com/shopspring/decimal"

// BOMDetail línea del BOM con el costo calculado.
type BOMDetail struct {
	MaterialID     string          `json:"material_id"`
	MaterialNama   string          `json:"material_nama"`
	MaterialSatuan string          `json:"material_satuan"`
	Qty            decimal.Decimal `json:"qty"`
	HargaSatuan    decimal.Decimal `json:"harga_satuan"`
	BiayaBahan     decimal.Decimal `json:"biaya_bahan"`
}

// ExtraCostItem costo extra de un producto.
type ExtraCostItem struct {
	ID    int64           `json:"id"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// HPPResponse salida de GetHPP.
type HPPResponse struct {
	ProductID   string          `json:"product_id"`
	ProductNama string          `json:"product_nama"`
	TotalBahan  decimal.Decimal `json:"total_bahan"`
	BiayaLain   decimal.Decimal `json:"biaya_lain"`
	HPP         decimal.Decimal `json:"hpp"`
	BOMDetails  []BOMDetail     `json:"bom_details"`
	ExtraCosts  []ExtraCostItem `json:"extra_costs"`
}

// CalculatePricingRequest entrada de CalculatePricing.
type CalculatePricingRequest struct {
	StoreProductID int64 `json:"store_product_id"`
}

// FeeBreakdownItem costo de marketplace calculado.
type FeeBreakdownItem struct {
	CostTypeID     string          `json:"cost_type_id"`
	CostTypeName   string          `json:"cost_type_name"`
	CalcType       string          `json:"calc_type"`
	ApplyTo        string          `json:"apply_to"`
	Value          decimal.Decimal `json:"value"`
	CalculatedCost decimal.Decimal `json:"calculated_cost"`
}

// PricingResponse salida de CalculatePricing.
type PricingResponse struct {
	StoreProductID            int64              `json:"store_product_id"`
	StoreID                   string             `json:"store_id"`
	ProductID                 string             `json:"product_id"`
	ProductName               string             `json:"product_name"`
	StoreName                 string             `json:"store_name"`
	HargaJual                 decimal.Decimal    `json:"harga_jual"`
	HPP                       decimal.Decimal    `json:"hpp"`
	TotalDiskon               decimal.Decimal    `json:"total_diskon"`
	HargaSetelahDiskon        decimal.Decimal    `json:"harga_setelah_diskon"`
	TotalBiayaMarketplace     decimal.Decimal    `json:"total_biaya_marketplace"`
	BiayaMarketplaceBreakdown []FeeBreakdownItem `json:"biaya_marketplace_breakdown"`
	ProfitPerOrder            decimal.Decimal    `json:"profit_per_order"`
	MarginPercent             decimal.Decimal    `json:"margin_percent"`
}

// ReversePricingRequest entrada de ReversePricing. TargetValue es Rp (fixed) o fracción de margen (percent).
type ReversePricingRequest struct {
	StoreID     string          `json:"store_id"`
	ProductID   string          `json:"product_id"`
	TargetType  string          `json:"target_type"`
	TargetValue decimal.Decimal `json:"target_value"`
}

// ReversePricingResponse salida de ReversePricing. BreakEvenROAS es null si no existe.
type ReversePricingResponse struct {
	StoreID                   string             `json:"store_id"`
	ProductID                 string             `json:"product_id"`
	HPP                       decimal.Decimal    `json:"hpp"`
	TargetType                string             `json:"target_type"`
	TargetValue               decimal.Decimal    `json:"target_value"`
	RecommendedPrice          decimal.Decimal    `json:"recommended_price"`
	ExpectedProfit            decimal.Decimal    `json:"expected_profit"`
	ExpectedMarginPercent     decimal.Decimal    `json:"expected_margin_percent"`
	BreakEvenROAS             *decimal.Decimal   `json:"break_even_roas"`
	BreakEvenROASDisplay      decimal.Decimal    `json:"break_even_roas_display"`
	MaxCPA                    decimal.Decimal    `json:"max_cpa"`
	RoundedPrice              decimal.Decimal    `json:"rounded_price"`
	RoundedProfit             decimal.Decimal    `json:"rounded_profit"`
	BiayaMarketplaceBreakdown []FeeBreakdownItem `json:"biaya_marketplace_breakdown"`
}

// AlertDTO alerta del grader.
type AlertDTO struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// DecisionResponse salida de GetDecision.
type DecisionResponse struct {
	StoreID              string           `json:"store_id"`
	ProductID            string           `json:"product_id"`
	ProductName          string           `json:"product_name"`
	StoreName            string           `json:"store_name"`
	HargaJual            decimal.Decimal  `json:"harga_jual"`
	HPP                  decimal.Decimal  `json:"hpp"`
	Grade                string           `json:"grade"`
	GradeReason          string           `json:"grade_reason"`
	MarginPercent        decimal.Decimal  `json:"margin_percent"`
	ProfitPerOrder       decimal.Decimal  `json:"profit_per_order"`
	BreakEvenROAS        *decimal.Decimal `json:"break_even_roas"`
	BreakEvenROASDisplay decimal.Decimal  `json:"break_even_roas_display"`
	MaxCPA               decimal.Decimal  `json:"max_cpa"`
	HasAdsData           bool             `json:"has_ads_data"`
	TotalAdsSpend        decimal.Decimal  `json:"total_ads_spend"`
	TotalGMV             decimal.Decimal  `json:"total_gmv"`
	TotalOrders          int64            `json:"total_orders"`
	ROAS                 *decimal.Decimal `json:"roas"`
	CPA                  *decimal.Decimal `json:"cpa"`
	TACoS                *decimal.Decimal `json:"tacos"`
	AdsProfitTotal       *decimal.Decimal `json:"ads_profit_total"`
	AdsProfitPerOrder    *decimal.Decimal `json:"ads_profit_per_order"`
	Alerts               []AlertDTO       `json:"alerts"`
}
