package model

import (
	"time"

	"github.com/google/uuid"
)

// Machinery category types.
const (
	CategoriaLijera = "lijera"
	CategoriaPesada = "pesada"
)

// CategoriaMaquinaria classifies machines as light or heavy.
type CategoriaMaquinaria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string    `gorm:"type:varchar(20);not null"`
	Descripcion *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Maquinas []Maquina `gorm:"foreignKey:CategoriaID"`
}

func (CategoriaMaquinaria) TableName() string { return "categorias_maquinarias" }

// TipoCategoriaValido reports whether tipo belongs to the enumerated set.
func TipoCategoriaValido(tipo string) bool {
	return tipo == CategoriaLijera || tipo == CategoriaPesada
}
