// Package money formatea montos en Rupiah y porcentajes para mensajes de usuario (alertas, PDF).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah formatea un monto redondeado al entero: "Rp 15.000", "-Rp 2.500".
func Rupiah(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return printer.Sprintf("-Rp %d", -n)
	}
	return printer.Sprintf("Rp %d", n)
}

// Percent formatea un porcentaje (ya multiplicado por 100) con un decimal.
func Percent(d decimal.Decimal) string {
	f, _ := d.Round(1).Float64()
	return printer.Sprintf("%.1f%%", f)
}

// Ratio formatea un ratio (ROAS) con dos decimales.
func Ratio(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
