package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mantenimiento is a maintenance work order against a specific machine,
// linked to the request that necessitated it.
type Mantenimiento struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo              string          `gorm:"uniqueIndex;not null"`
	Nombre              string          `gorm:"index;not null"`
	Descripcion         string          `gorm:"not null"`
	Costo               decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// DuracionEstimada is expressed in hours, 1..720
	DuracionEstimada    int    `gorm:"not null"`
	ManualProcedimiento *string
	FechaEntrega        time.Time `gorm:"not null"`
	MaquinaID           uuid.UUID `gorm:"type:uuid;index;not null"`
	SolicitudID         uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Maquina   *Maquina   `gorm:"foreignKey:MaquinaID"`
	Solicitud *Solicitud `gorm:"foreignKey:SolicitudID"`
	Pagos     []Pago     `gorm:"foreignKey:MantenimientoID"`
}

func (Mantenimiento) TableName() string { return "mantenimientos" }
