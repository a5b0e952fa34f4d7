package model

import (
	"time"

	"github.com/google/uuid"
)

// Availability states of a Maquina.
const (
	MaquinaDisponible    = "disponible"
	MaquinaOcupada       = "ocupada"
	MaquinaMantenimiento = "mantenimiento"
)

// Maquina is a machinery unit available for requests and maintenance.
type Maquina struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string    `gorm:"index;not null"`
	CategoriaID uuid.UUID `gorm:"type:uuid;index;not null"`
	Estado      string    `gorm:"type:varchar(20);not null;default:'disponible'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria      *CategoriaMaquinaria `gorm:"foreignKey:CategoriaID"`
	Mantenimientos []Mantenimiento      `gorm:"foreignKey:MaquinaID"`
	Asignaciones   []SolicitudMaquina   `gorm:"foreignKey:MaquinaID"`
}

func (Maquina) TableName() string { return "maquinas" }

// EstadoMaquinaValido reports whether estado belongs to the enumerated set.
func EstadoMaquinaValido(estado string) bool {
	switch estado {
	case MaquinaDisponible, MaquinaOcupada, MaquinaMantenimiento:
		return true
	}
	return false
}
