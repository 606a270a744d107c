package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-profit-api/pkg/money"
)

// Grade calificación cualitativa de viabilidad con iklan.
type Grade string

const (
	GradeNotViable Grade = "NOT_VIABLE"
	GradeRisky     Grade = "RISKY"
	GradeViable    Grade = "VIABLE"
	GradeScalable  Grade = "SCALABLE"
)

// Rank orden total NOT_VIABLE < RISKY < VIABLE < SCALABLE.
func (g Grade) Rank() int {
	switch g {
	case GradeRisky:
		return 1
	case GradeViable:
		return 2
	case GradeScalable:
		return 3
	default:
		return 0
	}
}

// Policy umbrales ajustables del grader y de las alertas.
type Policy struct {
	RiskyROASMultiplier    decimal.Decimal
	ScalableROASMultiplier decimal.Decimal
	MarginLowPercent       decimal.Decimal
	MarginHealthyPercent   decimal.Decimal
	MarginScalablePercent  decimal.Decimal
	ROASNearMultiplier     decimal.Decimal
	CPANearRatio           decimal.Decimal
	TACoSMax               decimal.Decimal
	AdsErosionRatio        decimal.Decimal
}

// DefaultPolicy valores por defecto (los mismos que la configuración).
func DefaultPolicy() Policy {
	return Policy{
		RiskyROASMultiplier:    decimal.RequireFromString("1.2"),
		ScalableROASMultiplier: decimal.NewFromInt(2),
		MarginLowPercent:       decimal.NewFromInt(5),
		MarginHealthyPercent:   decimal.NewFromInt(15),
		MarginScalablePercent:  decimal.NewFromInt(25),
		ROASNearMultiplier:     decimal.RequireFromString("1.3"),
		CPANearRatio:           decimal.RequireFromString("0.8"),
		TACoSMax:               decimal.RequireFromString("0.2"),
		AdsErosionRatio:        decimal.RequireFromString("0.5"),
	}
}

// CampaignStat métricas de una campaña dentro del agregado.
type CampaignStat struct {
	Campaign string
	Spend    decimal.Decimal
	GMV      decimal.Decimal
	Orders   int64
	CPA      *decimal.Decimal
}

// AdSummary agregado de los AdRecord de un par (store, product).
type AdSummary struct {
	HasData    bool
	Spend      decimal.Decimal
	GMV        decimal.Decimal
	Orders     int64
	TotalSales *decimal.Decimal
	ROAS       *decimal.Decimal // Σgmv / Σspend, ponderado por spend
	CPA        *decimal.Decimal
	TACoS      *decimal.Decimal
	Campaigns  []CampaignStat
}

// SummarizeAds agrega los registros. Sin registros HasData es false.
func SummarizeAds(records []entity.AdRecord) AdSummary {
	s := AdSummary{HasData: len(records) > 0, Spend: decimal.Zero, GMV: decimal.Zero}
	var totalSales decimal.Decimal
	hasSales := false
	for i := range records {
		r := &records[i]
		s.Spend = s.Spend.Add(r.Spend)
		s.GMV = s.GMV.Add(r.GMV)
		s.Orders += r.Orders
		if r.TotalSales != nil {
			totalSales = totalSales.Add(*r.TotalSales)
			hasSales = true
		}
		s.Campaigns = append(s.Campaigns, CampaignStat{
			Campaign: r.Campaign,
			Spend:    r.Spend,
			GMV:      r.GMV,
			Orders:   r.Orders,
			CPA:      r.CPA(),
		})
	}
	agg := entity.AdRecord{Spend: s.Spend, GMV: s.GMV, Orders: s.Orders}
	if hasSales {
		s.TotalSales = &totalSales
		agg.TotalSales = &totalSales
	}
	s.ROAS = agg.ROAS()
	s.CPA = agg.CPA()
	s.TACoS = agg.TACoS()
	return s
}

// Decision resultado del Ad Viability Grader.
type Decision struct {
	Grade             Grade
	Reason            string
	MarginPercent     decimal.Decimal
	ProfitPerOrder    decimal.Decimal
	BreakEvenROAS     *decimal.Decimal // nil cuando profit_per_order <= 0
	MaxCPA            decimal.Decimal
	Ads               AdSummary
	AdsProfitTotal    *decimal.Decimal // nil sin datos de iklan
	AdsProfitPerOrder *decimal.Decimal // nil sin órdenes
	Alerts            []Alert
}

// Grader aplica la Policy a un ForwardResult y a un AdSummary.
type Grader struct {
	Policy Policy
}

// NewGrader crea un grader con la política dada.
func NewGrader(p Policy) Grader {
	return Grader{Policy: p}
}

// Evaluate calcula break-even, max CPA, grade (primera regla que aplica) y alertas.
func (g Grader) Evaluate(fwd ForwardResult, ads AdSummary) Decision {
	be, maxCPA := BreakEven(fwd.SellPrice, fwd.ProfitPerOrder)
	d := Decision{
		MarginPercent:  fwd.MarginPercent,
		ProfitPerOrder: fwd.ProfitPerOrder,
		BreakEvenROAS:  be,
		MaxCPA:         maxCPA,
		Ads:            ads,
	}
	if ads.HasData {
		// costo unitario sin iklan = hpp + total_fee en el precio actual
		unitCost := fwd.HPP.Add(fwd.Fees.Total)
		total := ads.GMV.Sub(unitCost.Mul(decimal.NewFromInt(ads.Orders))).Sub(ads.Spend)
		d.AdsProfitTotal = &total
		if ads.Orders > 0 {
			per := total.Div(decimal.NewFromInt(ads.Orders))
			d.AdsProfitPerOrder = &per
		}
	}
	d.Grade, d.Reason = g.grade(d)
	d.Alerts = g.alerts(d)
	return d
}

func (g Grader) grade(d Decision) (Grade, string) {
	p := g.Policy
	if !d.ProfitPerOrder.IsPositive() {
		return GradeNotViable, fmt.Sprintf("Produk tidak menghasilkan profit per order (%s) bahkan tanpa iklan", money.Rupiah(d.ProfitPerOrder))
	}
	if d.AdsProfitPerOrder != nil && d.AdsProfitPerOrder.IsNegative() {
		return GradeNotViable, fmt.Sprintf("Iklan membuat rugi %s per order", money.Rupiah(d.AdsProfitPerOrder.Neg()))
	}
	if d.Ads.ROAS != nil && d.BreakEvenROAS != nil {
		roas, be := *d.Ads.ROAS, *d.BreakEvenROAS
		switch {
		case roas.LessThan(be):
			return GradeNotViable, fmt.Sprintf("ROAS %s di bawah break-even %s, iklan menggerus profit", money.Ratio(roas), money.Ratio(be))
		case roas.LessThan(be.Mul(p.RiskyROASMultiplier)):
			return GradeRisky, fmt.Sprintf("ROAS %s hanya sedikit di atas break-even %s", money.Ratio(roas), money.Ratio(be))
		case roas.LessThan(be.Mul(p.ScalableROASMultiplier)):
			return GradeViable, fmt.Sprintf("ROAS %s aman di atas break-even %s", money.Ratio(roas), money.Ratio(be))
		default:
			return GradeScalable, fmt.Sprintf("ROAS %s minimal %sx break-even %s, aman untuk menaikkan budget", money.Ratio(roas), p.ScalableROASMultiplier.String(), money.Ratio(be))
		}
	}
	// sin ROAS (sin iklan o spend cero) se califica por margen
	switch {
	case d.MarginPercent.LessThan(p.MarginLowPercent):
		return GradeRisky, fmt.Sprintf("Margin %s terlalu tipis", money.Percent(d.MarginPercent))
	case d.MarginPercent.GreaterThanOrEqual(p.MarginScalablePercent):
		return GradeScalable, fmt.Sprintf("Margin %s sangat sehat, layak diuji dengan iklan", money.Percent(d.MarginPercent))
	default:
		return GradeViable, fmt.Sprintf("Margin %s cukup, belum ada data iklan", money.Percent(d.MarginPercent))
	}
}
