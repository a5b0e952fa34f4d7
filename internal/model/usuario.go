package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a Usuario.
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
)

// Usuario stores system users with role-based access.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'empleado'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }

// RolValido reports whether rol belongs to the enumerated set.
func RolValido(rol string) bool {
	return rol == RolAdmin || rol == RolEmpleado
}
