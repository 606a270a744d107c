package pricing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-profit-api/internal/domain/entity"
)

func scenarioForward(t *testing.T) ForwardResult {
	t.Helper()
	return Forward(Input{SellPrice: dec("20000"), HPP: scenarioHPP(t).HPP, Rules: adminFee()})
}

func levels(alerts []Alert) []AlertLevel {
	out := make([]AlertLevel, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Level)
	}
	return out
}

func TestSummarizeAds_PonderadoPorSpend(t *testing.T) {
	sales := dec("400000")
	s := SummarizeAds([]entity.AdRecord{
		{Campaign: "a", Spend: dec("10000"), GMV: dec("50000"), Orders: 3},
		{Campaign: "b", Spend: dec("40000"), GMV: dec("100000"), Orders: 7, TotalSales: &sales},
	})
	require.True(t, s.HasData)
	require.NotNil(t, s.ROAS)
	assertDec(t, "3", *s.ROAS)
	assertDec(t, "5000", *s.CPA)
	require.NotNil(t, s.TACoS)
	assertDec(t, "0.125", *s.TACoS)
	assert.Len(t, s.Campaigns, 2)
}

func TestSummarizeAds_Vacio(t *testing.T) {
	s := SummarizeAds(nil)
	assert.False(t, s.HasData)
	assert.Nil(t, s.ROAS)
	assert.Nil(t, s.CPA)
	assert.Nil(t, s.TACoS)
}

func TestEvaluate_EscenarioScalable(t *testing.T) {
	ads := SummarizeAds([]entity.AdRecord{{Spend: dec("50000"), GMV: dec("150000"), Orders: 10}})
	d := NewGrader(DefaultPolicy()).Evaluate(scenarioForward(t), ads)

	assert.Equal(t, GradeScalable, d.Grade)
	assert.NotEmpty(t, d.Reason)
	require.NotNil(t, d.BreakEvenROAS)
	assert.Equal(t, "1.33", d.BreakEvenROAS.StringFixed(2))
	assertDec(t, "15000", d.MaxCPA)
	require.NotNil(t, d.AdsProfitTotal)
	assertDec(t, "50000", *d.AdsProfitTotal)
	assertDec(t, "5000", *d.AdsProfitPerOrder)
	// 5.000 < 0,5 × 15.000: advertencia de erosión
	assert.Equal(t, []AlertLevel{AlertWarning}, levels(d.Alerts))
}

func TestEvaluate_ProfitNoPositivoEsNotViable(t *testing.T) {
	fwd := Forward(Input{SellPrice: dec("5000"), HPP: dec("6000"), Rules: adminFee()})
	d := NewGrader(DefaultPolicy()).Evaluate(fwd, SummarizeAds(nil))

	assert.Equal(t, GradeNotViable, d.Grade)
	assert.Nil(t, d.BreakEvenROAS)
	assert.True(t, d.MaxCPA.IsZero())
	assert.Contains(t, levels(d.Alerts), AlertDanger)
	assert.Contains(t, levels(d.Alerts), AlertInfo)
}

func TestEvaluate_UmbralesROAS(t *testing.T) {
	// break-even 1,333...; spend 10.000 sin órdenes atribuidas para aislar el ROAS
	cases := []struct {
		gmv  string
		want Grade
	}{
		{"13000", GradeNotViable},
		{"14000", GradeRisky},
		{"20000", GradeViable},
		{"26000", GradeViable},
		{"27000", GradeScalable},
	}
	for _, tc := range cases {
		ads := SummarizeAds([]entity.AdRecord{{Spend: dec("10000"), GMV: dec(tc.gmv)}})
		d := NewGrader(DefaultPolicy()).Evaluate(scenarioForward(t), ads)
		assert.Equalf(t, tc.want, d.Grade, "gmv %s", tc.gmv)
	}
}

func TestEvaluate_SinROASUsaMargen(t *testing.T) {
	g := NewGrader(DefaultPolicy())
	cases := []struct {
		price string
		want  Grade
	}{
		{"4300", GradeRisky},     // margen ~1,98%
		{"5000", GradeViable},    // margen 15%
		{"20000", GradeScalable}, // margen 75%
	}
	for _, tc := range cases {
		fwd := Forward(Input{SellPrice: dec(tc.price), HPP: dec("4000"), Rules: adminFee()})
		d := g.Evaluate(fwd, SummarizeAds(nil))
		assert.Equalf(t, tc.want, d.Grade, "precio %s", tc.price)
	}

	// spend cero: hay datos pero no hay ROAS
	d := g.Evaluate(scenarioForward(t), SummarizeAds([]entity.AdRecord{{Spend: decimal.Zero, GMV: dec("40000"), Orders: 2}}))
	assert.Nil(t, d.Ads.ROAS)
	assert.Equal(t, GradeScalable, d.Grade)
}

func TestEvaluate_MonotoniaEnROAS(t *testing.T) {
	g := NewGrader(DefaultPolicy())
	fwd := scenarioForward(t)
	prev := -1
	for gmv := int64(0); gmv <= 200000; gmv += 2500 {
		ads := SummarizeAds([]entity.AdRecord{{Spend: dec("10000"), GMV: decimal.NewFromInt(gmv), Orders: 1}})
		rank := g.Evaluate(fwd, ads).Grade.Rank()
		assert.GreaterOrEqualf(t, rank, prev, "gmv %d bajó el grade", gmv)
		prev = rank
	}
	assert.Equal(t, GradeScalable.Rank(), prev)
}

func TestEvaluate_AlertasCPAyTACoS(t *testing.T) {
	sales := dec("100000")
	ads := SummarizeAds([]entity.AdRecord{
		{Campaign: "promo", Spend: dec("40000"), GMV: dec("120000"), Orders: 2, TotalSales: &sales},
		{Campaign: "brand", Spend: dec("10000"), GMV: dec("120000"), Orders: 8},
	})
	d := NewGrader(DefaultPolicy()).Evaluate(scenarioForward(t), ads)

	var msgs []string
	for _, a := range d.Alerts {
		msgs = append(msgs, a.Message)
	}
	// CPA de 'promo' = 20.000 > max CPA 15.000
	assert.Contains(t, levels(d.Alerts), AlertDanger)
	assert.True(t, anyContains(msgs, "'promo' (Rp 20.000) melebihi max CPA Rp 15.000"), msgs)
	// TACoS 50.000 / 100.000 = 50% > 20%
	assert.True(t, anyContains(msgs, "TACoS"), msgs)
}

func TestEvaluate_CampanasSanasSinAlertas(t *testing.T) {
	ads := SummarizeAds([]entity.AdRecord{{Campaign: "x", Spend: dec("10000"), GMV: dec("200000"), Orders: 10}})
	d := NewGrader(DefaultPolicy()).Evaluate(scenarioForward(t), ads)
	assert.Equal(t, GradeScalable, d.Grade)
	assert.Empty(t, d.Alerts)
}

func anyContains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
