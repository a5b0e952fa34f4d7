package model

import (
	"time"

	"github.com/google/uuid"
)

// Cargo is a job title assignable to employees.
type Cargo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Empleados []Empleado `gorm:"foreignKey:CargoID"`
}

func (Cargo) TableName() string { return "cargos" }
