package model

import (
	"time"

	"github.com/google/uuid"
)

// Representante is a company's designated contact person.
type Representante struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Cedula    string    `gorm:"uniqueIndex;not null"`
	Telefono  string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	EmpresaID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Empresa *Empresa `gorm:"foreignKey:EmpresaID"`
}

func (Representante) TableName() string { return "representantes" }
