package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdRecord resultado agregado de una campaña de iklan para un par (store, product).
type AdRecord struct {
	ID         int64
	StoreID    string
	ProductID  string
	Campaign   string
	Spend      decimal.Decimal
	GMV        decimal.Decimal
	Orders     int64
	TotalSales *decimal.Decimal // omzet total del producto en la tienda (para TACoS); nil si no se reportó
	CreatedAt  time.Time
}

// ROAS gmv / spend; nil si spend no es positivo.
func (a *AdRecord) ROAS() *decimal.Decimal {
	if !a.Spend.IsPositive() {
		return nil
	}
	v := a.GMV.Div(a.Spend)
	return &v
}

// ACOS spend / gmv; nil si gmv no es positivo.
func (a *AdRecord) ACOS() *decimal.Decimal {
	if !a.GMV.IsPositive() {
		return nil
	}
	v := a.Spend.Div(a.GMV)
	return &v
}

// AOV gmv / orders; nil sin órdenes.
func (a *AdRecord) AOV() *decimal.Decimal {
	if a.Orders <= 0 {
		return nil
	}
	v := a.GMV.Div(decimal.NewFromInt(a.Orders))
	return &v
}

// CPA spend / orders; nil sin órdenes.
func (a *AdRecord) CPA() *decimal.Decimal {
	if a.Orders <= 0 {
		return nil
	}
	v := a.Spend.Div(decimal.NewFromInt(a.Orders))
	return &v
}

// TACoS spend / total_sales; solo si total_sales existe y es > 0.
func (a *AdRecord) TACoS() *decimal.Decimal {
	if a.TotalSales == nil || !a.TotalSales.IsPositive() {
		return nil
	}
	v := a.Spend.Div(*a.TotalSales)
	return &v
}
