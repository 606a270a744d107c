package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/domain"
)

// TargetType modo del objetivo de reverse pricing.
type TargetType string

const (
	TargetFixed   TargetType = "fixed"   // profit por orden en Rp
	TargetPercent TargetType = "percent" // margen como fracción de harga_jual (0.15 = 15%)
)

// Valid indica si el modo es conocido.
func (t TargetType) Valid() bool { return t == TargetFixed || t == TargetPercent }

// ReverseInput estructura de costos y objetivo.
type ReverseInput struct {
	HPP         decimal.Decimal
	Rules       []FeeRule
	Discounts   []DiscountRule
	TargetType  TargetType
	TargetValue decimal.Decimal
}

// ReverseResult precio recomendado y el cálculo directo re-ejecutado en ese precio.
type ReverseResult struct {
	RecommendedPrice      decimal.Decimal // solución exacta, sin redondeo
	ExpectedProfit        decimal.Decimal
	ExpectedMarginPercent decimal.Decimal
	BreakEvenROAS         *decimal.Decimal
	MaxCPA                decimal.Decimal
	Forward               ForwardResult
	RoundedPrice          decimal.Decimal // RecommendedPrice redondeado hacia arriba a Solver.RoundingStep
	RoundedProfit         decimal.Decimal
}

// Solver resuelve el precio de venta en forma cerrada.
//
// Con descuentos after = a·P - b y tarifas F + r_p·P + r_a·after la ganancia es lineal en P:
//
//	profit(P) = K·P - C,  K = a·(1 - r_a) - r_p,  C = hpp + F + b·(1 - r_a)
//
// Objetivo fijo: P = (C + t) / K. Objetivo porcentual: P = C / (K - t).
type Solver struct {
	MinDenominator decimal.Decimal
	RoundingStep   decimal.Decimal
}

// NewSolver crea un solver con el guard de denominador y el paso de redondeo dados.
func NewSolver(minDenominator, roundingStep float64) Solver {
	return Solver{
		MinDenominator: decimal.NewFromFloat(minDenominator),
		RoundingStep:   decimal.NewFromFloat(roundingStep),
	}
}

// Solve calcula el precio que alcanza el objetivo. Nunca devuelve un precio negativo o infinito:
// los objetivos sin solución fallan con ErrFeesExceedPrice o ErrTargetUnreachable.
func (s Solver) Solve(in ReverseInput) (*ReverseResult, error) {
	if !in.TargetType.Valid() {
		return nil, domain.Invalid("target_type", "harus 'percent' atau 'fixed'")
	}
	if in.HPP.IsNegative() {
		return nil, domain.Invalid("hpp", "tidak boleh negatif")
	}
	one := decimal.NewFromInt(1)
	// Un margen >= 1 no es inválido sino inalcanzable: lo resuelve el chequeo del denominador.
	if in.TargetType == TargetPercent && in.TargetValue.LessThanOrEqual(one.Neg()) {
		return nil, domain.Invalid("target_value", "target margin harus lebih dari -1 (contoh 0.15 = 15%)")
	}

	lf := Linearize(in.Rules)
	dm := linearDiscounts(in.Discounts)
	keepAfter := one.Sub(lf.RateOnAfterDiscount)
	k := dm.Factor.Mul(keepAfter).Sub(lf.RateOnList)
	c := in.HPP.Add(lf.Fixed).Add(dm.Offset.Mul(keepAfter))

	if !dm.Factor.IsPositive() {
		return nil, fmt.Errorf("%w (diskon persen menghabiskan seluruh harga jual)", domain.ErrTargetUnreachable)
	}
	if k.LessThanOrEqual(s.MinDenominator) {
		return nil, fmt.Errorf("%w (sisa harga setelah biaya %s)", domain.ErrFeesExceedPrice, k.StringFixed(4))
	}

	var price decimal.Decimal
	switch in.TargetType {
	case TargetFixed:
		price = c.Add(in.TargetValue).Div(k)
	case TargetPercent:
		den := k.Sub(in.TargetValue)
		if den.LessThanOrEqual(s.MinDenominator) {
			return nil, fmt.Errorf("%w (biaya %% + target margin >= 100%%)", domain.ErrTargetUnreachable)
		}
		price = c.Div(den)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w (harga hasil %s)", domain.ErrTargetUnreachable, price.StringFixed(2))
	}

	fwd := Forward(Input{SellPrice: price, HPP: in.HPP, Rules: in.Rules, Discounts: in.Discounts})
	be, maxCPA := BreakEven(price, fwd.ProfitPerOrder)

	rounded := s.roundUp(price)
	roundedFwd := Forward(Input{SellPrice: rounded, HPP: in.HPP, Rules: in.Rules, Discounts: in.Discounts})

	return &ReverseResult{
		RecommendedPrice:      price,
		ExpectedProfit:        fwd.ProfitPerOrder,
		ExpectedMarginPercent: fwd.MarginPercent,
		BreakEvenROAS:         be,
		MaxCPA:                maxCPA,
		Forward:               fwd,
		RoundedPrice:          rounded,
		RoundedProfit:         roundedFwd.ProfitPerOrder,
	}, nil
}

func (s Solver) roundUp(price decimal.Decimal) decimal.Decimal {
	if !s.RoundingStep.IsPositive() {
		return price
	}
	return price.Div(s.RoundingStep).Ceil().Mul(s.RoundingStep)
}
