package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

// PriceBase base sobre la que se evalúa una tarifa porcentual.
type PriceBase int

const (
	BaseListPrice     PriceBase = iota // harga_jual
	BaseAfterDiscount                  // harga_setelah_diskon
)

// ApplyTo devuelve el valor persistido equivalente.
func (b PriceBase) ApplyTo() entity.ApplyTo {
	if b == BaseAfterDiscount {
		return entity.ApplyToAfterDiscount
	}
	return entity.ApplyToPrice
}

// RuleMeta identifica el tipo de costo del que proviene una regla.
type RuleMeta struct {
	CostTypeID   string
	CostTypeName string
}

// FeeRule variante etiquetada: FixedFee | PercentFee. El método privado cierra el conjunto.
type FeeRule interface {
	meta() RuleMeta
	isFeeRule()
}

// FixedFee tarifa fija en Rp por orden.
type FixedFee struct {
	RuleMeta
	Amount decimal.Decimal
}

// PercentFee tarifa porcentual (Rate como fracción, 0.05 = 5%) sobre Base.
type PercentFee struct {
	RuleMeta
	Rate decimal.Decimal
	Base PriceBase
}

func (f FixedFee) meta() RuleMeta   { return f.RuleMeta }
func (f FixedFee) isFeeRule()       {}
func (p PercentFee) meta() RuleMeta { return p.RuleMeta }
func (p PercentFee) isFeeRule()     {}

// RulesFromCosts traduce los costos resueltos del repositorio a reglas tipadas, preservando el orden.
func RulesFromCosts(costs []entity.ResolvedCost) []FeeRule {
	rules := make([]FeeRule, 0, len(costs))
	for _, c := range costs {
		m := RuleMeta{CostTypeID: c.CostType.ID, CostTypeName: c.CostType.Name}
		if c.CostType.CalcType == entity.CalcTypeFixed {
			rules = append(rules, FixedFee{RuleMeta: m, Amount: c.Value})
			continue
		}
		base := BaseListPrice
		if c.CostType.ApplyTo == entity.ApplyToAfterDiscount {
			base = BaseAfterDiscount
		}
		rules = append(rules, PercentFee{RuleMeta: m, Rate: c.Value, Base: base})
	}
	return rules
}

// Price par de bases de precio de una orden.
type Price struct {
	List          decimal.Decimal // harga_jual
	AfterDiscount decimal.Decimal // harga_setelah_diskon; igual a List sin descuentos
}

// ListPrice construye un Price sin capa de descuentos.
func ListPrice(p decimal.Decimal) Price {
	return Price{List: p, AfterDiscount: p}
}

// FeeLine costo calculado de una regla.
type FeeLine struct {
	CostTypeID   string
	CostTypeName string
	CalcType     entity.CalcType
	ApplyTo      entity.ApplyTo
	Value        decimal.Decimal // valor configurado (fracción o Rp)
	Calculated   decimal.Decimal // calculated_cost
}

// FeeBreakdown resultado del Fee Decomposer.
type FeeBreakdown struct {
	Total decimal.Decimal
	Lines []FeeLine
}

// ComputeFees evalúa cada regla de forma independiente y suma. Ninguna regla depende de la salida de otra,
// así que el total no depende del orden; Lines conserva el orden de entrada.
func ComputeFees(price Price, rules []FeeRule) FeeBreakdown {
	out := FeeBreakdown{Total: decimal.Zero, Lines: make([]FeeLine, 0, len(rules))}
	for _, r := range rules {
		line := FeeLine{CostTypeID: r.meta().CostTypeID, CostTypeName: r.meta().CostTypeName}
		switch rule := r.(type) {
		case FixedFee:
			line.CalcType = entity.CalcTypeFixed
			line.ApplyTo = entity.ApplyToPrice
			line.Value = rule.Amount
			line.Calculated = rule.Amount
		case PercentFee:
			base := price.List
			if rule.Base == BaseAfterDiscount {
				base = price.AfterDiscount
			}
			line.CalcType = entity.CalcTypePercent
			line.ApplyTo = rule.Base.ApplyTo()
			line.Value = rule.Rate
			line.Calculated = rule.Rate.Mul(base)
		}
		out.Total = out.Total.Add(line.Calculated)
		out.Lines = append(out.Lines, line)
	}
	return out
}

// LinearFees forma afín de un conjunto de reglas: fees = Fixed + RateOnList×List + RateOnAfterDiscount×AfterDiscount.
type LinearFees struct {
	Fixed               decimal.Decimal
	RateOnList          decimal.Decimal
	RateOnAfterDiscount decimal.Decimal
}

// Linearize agrupa las reglas por tipo de base.
func Linearize(rules []FeeRule) LinearFees {
	lf := LinearFees{Fixed: decimal.Zero, RateOnList: decimal.Zero, RateOnAfterDiscount: decimal.Zero}
	for _, r := range rules {
		switch rule := r.(type) {
		case FixedFee:
			lf.Fixed = lf.Fixed.Add(rule.Amount)
		case PercentFee:
			if rule.Base == BaseAfterDiscount {
				lf.RateOnAfterDiscount = lf.RateOnAfterDiscount.Add(rule.Rate)
			} else {
				lf.RateOnList = lf.RateOnList.Add(rule.Rate)
			}
		}
	}
	return lf
}
