// Package pdf genera la hoja de pricing (lembar harga) de un producto listado en una tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + tienda   │  Grade + fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HPP: Bahan | Qty | Harga satuan | Biaya + biaya lain       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BIAYA MARKETPLACE: Jenis | Nilai | Biaya                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RINGKASAN: harga, diskon, profit, margin, BE ROAS, CPA     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTS                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/application/pricing"
	"github.com/jhoicas/marketplace-profit-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 238, Green: 77, Blue: 45}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorOK      = &props.Color{Red: 20, Green: 130, Blue: 60}
)

var _ pricing.PricingSheetGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa pricing.PricingSheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePricingSheet genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePricingSheet(_ context.Context, sheet *pricing.PricingSheet) ([]byte, error) {
	if sheet == nil {
		return nil, fmt.Errorf("pdf: hoja de pricing nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lembar Harga "+sheet.Pricing.ProductName, true).
		WithAuthor(sheet.Pricing.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("HPP (HARGA POKOK PRODUKSI)"))
	m.AddRows(tableHeaderRow([]string{"Bahan", "Qty", "Harga satuan", "Biaya"}))
	m.AddRows(bomRows(sheet.HPP)...)
	m.AddRows(summaryRow("HPP", money.Rupiah(sheet.HPP.HPP), nil))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("BIAYA MARKETPLACE"))
	m.AddRows(tableHeaderRow([]string{"Jenis biaya", "Tipe", "Nilai", "Biaya"}))
	m.AddRows(feeRows(sheet.Pricing.BiayaMarketplaceBreakdown)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("RINGKASAN"))
	m.AddRows(totalsRows(sheet)...)

	if len(sheet.Decision.Alerts) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(sectionTitle("PERINGATAN"))
		m.AddRows(alertRows(sheet.Decision.Alerts)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + tienda (izq) y grade + fecha (der).
func headerRow(sheet *pricing.PricingSheet) core.Row {
	p := sheet.Pricing
	return row.New(18).Add(
		col.New(7).Add(
			text.New(p.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("SKU: %s   |   Toko: %s", p.ProductID, p.StoreName), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KEPUTUSAN IKLAN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(sheet.Decision.Grade, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7, Color: gradeColor(sheet.Decision.Grade),
			}),
			text.New("Tanggal: "+sheet.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

// tableHeaderRow: 4 columnas, la primera más ancha.
func tableHeaderRow(labels []string) core.Row {
	sizes := []int{5, 2, 2, 3}
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(cells ...string) core.Row {
	sizes := []int{5, 2, 2, 3}
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func bomRows(h dto.HPPResponse) []core.Row {
	rows := make([]core.Row, 0, len(h.BOMDetails)+len(h.ExtraCosts))
	for _, d := range h.BOMDetails {
		rows = append(rows, tableRow(
			d.MaterialNama,
			d.Qty.String()+" "+d.MaterialSatuan,
			money.Rupiah(d.HargaSatuan),
			money.Rupiah(d.BiayaBahan),
		))
	}
	for _, e := range h.ExtraCosts {
		rows = append(rows, tableRow(e.Label, "", "", money.Rupiah(e.Value)))
	}
	return rows
}

func feeRows(items []dto.FeeBreakdownItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{tableRow("Tidak ada biaya", "", "", money.Rupiah(decimal.Zero))}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		value := money.Rupiah(it.Value)
		if it.CalcType == "percent" {
			value = money.Percent(it.Value.Mul(decimal.NewFromInt(100)))
		}
		rows = append(rows, tableRow(it.CostTypeName, it.CalcType, value, money.Rupiah(it.CalculatedCost)))
	}
	return rows
}

// summaryRow: etiqueta y valor alineados a la derecha.
func summaryRow(label, value string, color *props.Color) core.Row {
	return row.New(6).Add(
		col.New(6),
		col.New(3).Add(text.New(label+":", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
		})),
		col.New(3).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 1, Color: color,
		})),
	)
}

func totalsRows(sheet *pricing.PricingSheet) []core.Row {
	p, d := sheet.Pricing, sheet.Decision
	profitColor := colorOK
	if !p.ProfitPerOrder.IsPositive() {
		profitColor = colorDanger
	}
	return []core.Row{
		summaryRow("Harga jual", money.Rupiah(p.HargaJual), nil),
		summaryRow("Total diskon", money.Rupiah(p.TotalDiskon), nil),
		summaryRow("Harga setelah diskon", money.Rupiah(p.HargaSetelahDiskon), nil),
		summaryRow("Total biaya marketplace", money.Rupiah(p.TotalBiayaMarketplace), nil),
		summaryRow("Profit per order", money.Rupiah(p.ProfitPerOrder), profitColor),
		summaryRow("Margin", money.Percent(p.MarginPercent), profitColor),
		summaryRow("Break-even ROAS", money.Ratio(d.BreakEvenROASDisplay), nil),
		summaryRow("Max CPA", money.Rupiah(d.MaxCPA), nil),
	}
}

func alertRows(alerts []dto.AlertDTO) []core.Row {
	rows := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		c := colorGray
		if a.Level == "danger" {
			c = colorDanger
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("[%s] %s", a.Level, a.Message), props.Text{Size: 8, Top: 1, Left: 2, Color: c}),
		)))
	}
	return rows
}

func gradeColor(grade string) *props.Color {
	switch grade {
	case "NOT_VIABLE", "RISKY":
		return colorDanger
	default:
		return colorOK
	}
}
