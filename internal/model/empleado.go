package model

import (
	"time"

	"github.com/google/uuid"
)

// Empleado is a staff member assigned to a job title (Cargo).
type Empleado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Documento string    `gorm:"uniqueIndex;not null"`
	Nombre    string    `gorm:"index;not null"`
	Apellido  string    `gorm:"not null"`
	Telefono  string    `gorm:"not null"`
	Email     *string
	CargoID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cargo *Cargo `gorm:"foreignKey:CargoID"`
}

func (Empleado) TableName() string { return "empleados" }
