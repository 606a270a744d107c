package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima comprada por lote (bahan).
// UnitPrice no se persiste: siempre se deriva de TotalPrice / UnitCount.
type Material struct {
	ID         string          // slug único, lo define el usuario
	Name       string          // nama
	TotalPrice decimal.Decimal // harga_total: precio de compra del lote
	UnitCount  decimal.Decimal // jumlah_unit: unidades por lote, siempre > 0
	Unit       string          // satuan (cm, pcs, gram...)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UnitPrice devuelve harga_satuan = harga_total / jumlah_unit. Cero si jumlah_unit no es positivo.
func (m *Material) UnitPrice() decimal.Decimal {
	if !m.UnitCount.IsPositive() {
		return decimal.Zero
	}
	return m.TotalPrice.Div(m.UnitCount)
}
