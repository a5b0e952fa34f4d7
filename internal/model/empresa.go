package model

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is a client company that submits machinery requests.
type Empresa struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NIT           string    `gorm:"column:nit;uniqueIndex;not null"`
	NombreEmpresa string    `gorm:"index;not null"`
	Direccion     string    `gorm:"not null"`
	Ciudad        string    `gorm:"not null"`
	Telefono      string    `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Representante *Representante `gorm:"foreignKey:EmpresaID"`
	Solicitudes   []Solicitud    `gorm:"foreignKey:EmpresaID"`
}

func (Empresa) TableName() string { return "empresas" }
