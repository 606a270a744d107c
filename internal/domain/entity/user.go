package entity

import "time"

// User representa al dueño de la tienda que usa la herramienta.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
