package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/pkg/money"
)

// AlertLevel severidad de una alerta.
type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// Alert mensaje para el seller. Una lista vacía significa que todo está sano.
type Alert struct {
	Level   AlertLevel
	Message string
}

// alerts evalúa cada regla de forma independiente.
func (g Grader) alerts(d Decision) []Alert {
	p := g.Policy
	out := []Alert{}
	add := func(level AlertLevel, format string, args ...interface{}) {
		out = append(out, Alert{Level: level, Message: fmt.Sprintf(format, args...)})
	}

	if d.ProfitPerOrder.IsNegative() {
		add(AlertDanger, "Rugi %s per order sebelum biaya iklan", money.Rupiah(d.ProfitPerOrder.Neg()))
	}
	if d.BreakEvenROAS == nil {
		add(AlertDanger, "Break-even ROAS tidak terdefinisi karena profit per order %s", money.Rupiah(d.ProfitPerOrder))
	}
	if d.ProfitPerOrder.IsPositive() && d.MarginPercent.LessThan(p.MarginLowPercent) {
		add(AlertWarning, "Margin %s di bawah %s", money.Percent(d.MarginPercent), money.Percent(p.MarginLowPercent))
	}
	if !d.Ads.HasData {
		add(AlertInfo, "Belum ada data iklan untuk produk ini di toko ini")
		return out
	}

	if d.Ads.ROAS != nil && d.BreakEvenROAS != nil {
		roas, be := *d.Ads.ROAS, *d.BreakEvenROAS
		if roas.LessThan(be) {
			add(AlertDanger, "ROAS %s di bawah break-even %s", money.Ratio(roas), money.Ratio(be))
		} else if roas.LessThan(be.Mul(p.ROASNearMultiplier)) {
			add(AlertWarning, "ROAS %s mendekati break-even %s", money.Ratio(roas), money.Ratio(be))
		}
	}

	campaignOver := false
	if d.MaxCPA.IsPositive() {
		for _, c := range d.Ads.Campaigns {
			if c.CPA != nil && c.CPA.GreaterThan(d.MaxCPA) {
				campaignOver = true
				add(AlertDanger, "CPA kampanye %s (%s) melebihi max CPA %s", campaignLabel(c.Campaign), money.Rupiah(*c.CPA), money.Rupiah(d.MaxCPA))
			}
		}
		if !campaignOver && d.Ads.CPA != nil && d.Ads.CPA.GreaterThan(d.MaxCPA.Mul(p.CPANearRatio)) {
			add(AlertWarning, "CPA %s mendekati max CPA %s", money.Rupiah(*d.Ads.CPA), money.Rupiah(d.MaxCPA))
		}
	}

	if d.Ads.TACoS != nil && d.Ads.TACoS.GreaterThan(p.TACoSMax) {
		add(AlertWarning, "TACoS %s di atas batas sehat %s", money.Percent(d.Ads.TACoS.Mul(hundred)), money.Percent(p.TACoSMax.Mul(hundred)))
	}

	if d.AdsProfitPerOrder != nil {
		per := *d.AdsProfitPerOrder
		if per.IsNegative() {
			add(AlertDanger, "Profit dengan iklan negatif: %s per order", money.Rupiah(per))
		} else if d.ProfitPerOrder.IsPositive() && per.LessThan(d.ProfitPerOrder.Mul(p.AdsErosionRatio)) {
			add(AlertWarning, "Iklan menggerus profit: %s per order dibanding %s tanpa iklan", money.Rupiah(per), money.Rupiah(d.ProfitPerOrder))
		}
	}
	return out
}

func campaignLabel(name string) string {
	if name == "" {
		return "tanpa nama"
	}
	return fmt.Sprintf("'%s'", name)
}

// BreakEvenDisplay valor de ROAS de equilibrio para la UI: 999.99 cuando no existe.
func BreakEvenDisplay(be *decimal.Decimal) decimal.Decimal {
	if be == nil {
		return decimal.RequireFromString("999.99")
	}
	return *be
}
