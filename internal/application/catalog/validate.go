package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/domain"
)

var one = decimal.NewFromInt(1)

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return domain.Invalid(field, "wajib diisi")
	}
	return nil
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.Invalid(field, "tidak boleh negatif")
	}
	return nil
}

func positive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return domain.Invalid(field, "harus lebih dari 0")
	}
	return nil
}

// fraction valores porcentuales expresados como fracción en [0, 1].
func fraction(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(one) {
		return domain.Invalid(field, "persentase harus di antara 0 dan 1 (contoh 0.05 = 5%)")
	}
	return nil
}

// firstErr devuelve el primer error no nil.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
