package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrNotListed          = fmt.Errorf("%w: produk tidak terdaftar di toko tersebut", ErrNotFound)
	ErrInvalidInput       = errors.New("input tidak valid")
	ErrDuplicate          = errors.New("data sudah ada")
	ErrUnauthorized       = errors.New("tidak terautentikasi")
	ErrEmailAlreadyExists = errors.New("email sudah terdaftar")

	// ErrInfeasibleTarget agrupa los objetivos de reverse pricing que no tienen solución.
	ErrInfeasibleTarget = errors.New("target tidak dapat dicapai")
	// ErrFeesExceedPrice: la suma de tarifas porcentuales (más descuentos) consume el 100% del precio.
	ErrFeesExceedPrice = fmt.Errorf("%w: total biaya marketplace melebihi 100%% harga", ErrInfeasibleTarget)
	// ErrTargetUnreachable: el objetivo de ganancia no se alcanza con ningún precio positivo.
	ErrTargetUnreachable = fmt.Errorf("%w: target profit tidak tercapai di harga berapa pun", ErrInfeasibleTarget)
)

// ValidationError describe un campo rechazado antes de calcular. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
