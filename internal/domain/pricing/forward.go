package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Input datos de un store-product para el cálculo directo.
type Input struct {
	SellPrice decimal.Decimal // harga_jual
	HPP       decimal.Decimal
	Rules     []FeeRule
	Discounts []DiscountRule
}

// ForwardResult resultado del Forward Pricing Calculator.
type ForwardResult struct {
	SellPrice          decimal.Decimal
	TotalDiscount      decimal.Decimal
	PriceAfterDiscount decimal.Decimal
	HPP                decimal.Decimal
	Fees               FeeBreakdown
	ProfitPerOrder     decimal.Decimal
	MarginPercent      decimal.Decimal // relativo a harga_jual; 0 si harga_jual es 0
}

// Forward calcula profit_per_order = harga_setelah_diskon - total_fee - hpp y el margen.
func Forward(in Input) ForwardResult {
	totalDiscount, price := ApplyDiscounts(in.SellPrice, in.Discounts)
	fees := ComputeFees(price, in.Rules)
	profit := price.AfterDiscount.Sub(fees.Total).Sub(in.HPP)

	margin := decimal.Zero
	if !in.SellPrice.IsZero() {
		margin = profit.Div(in.SellPrice).Mul(hundred)
	}
	return ForwardResult{
		SellPrice:          in.SellPrice,
		TotalDiscount:      totalDiscount,
		PriceAfterDiscount: price.AfterDiscount,
		HPP:                in.HPP,
		Fees:               fees,
		ProfitPerOrder:     profit,
		MarginPercent:      margin,
	}
}

// BreakEven devuelve el ROAS de equilibrio (harga_jual / profit) y el CPA máximo.
// Con profit <= 0 el ROAS de equilibrio no existe: se devuelve nil y MaxCPA = 0.
func BreakEven(sellPrice, profitPerOrder decimal.Decimal) (breakEvenROAS *decimal.Decimal, maxCPA decimal.Decimal) {
	if !profitPerOrder.IsPositive() {
		return nil, decimal.Zero
	}
	roas := sellPrice.Div(profitPerOrder)
	return &roas, profitPerOrder
}
