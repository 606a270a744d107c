package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// DiscountRule descuento sobre harga_jual: percent (fracción) o fixed (Rp).
type DiscountRule struct {
	Type  entity.DiscountType
	Value decimal.Decimal
}

// DiscountsFromEntities convierte los descuentos persistidos.
func DiscountsFromEntities(ds []entity.Discount) []DiscountRule {
	out := make([]DiscountRule, 0, len(ds))
	for _, d := range ds {
		out = append(out, DiscountRule{Type: d.Type, Value: d.Value})
	}
	return out
}

// ApplyDiscounts devuelve total_diskon y el Price resultante.
func ApplyDiscounts(sellPrice decimal.Decimal, discounts []DiscountRule) (decimal.Decimal, Price) {
	total := decimal.Zero
	for _, d := range discounts {
		if d.Type == entity.DiscountPercent {
			total = total.Add(sellPrice.Mul(d.Value))
		} else {
			total = total.Add(d.Value)
		}
	}
	return total, Price{List: sellPrice, AfterDiscount: sellPrice.Sub(total)}
}

// discountMap resuelve los descuentos al mapa afín after = Factor×price - Offset.
type discountMap struct {
	Factor decimal.Decimal
	Offset decimal.Decimal
}

func linearDiscounts(discounts []DiscountRule) discountMap {
	dm := discountMap{Factor: decimal.NewFromInt(1), Offset: decimal.Zero}
	for _, d := range discounts {
		if d.Type == entity.DiscountPercent {
			dm.Factor = dm.Factor.Sub(d.Value)
		} else {
			dm.Offset = dm.Offset.Add(d.Value)
		}
	}
	return dm
}
