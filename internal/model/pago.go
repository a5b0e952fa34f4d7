package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTarjeta       = "tarjeta"
	MetodoTransferencia = "transferencia"
)

// Payment states.
const (
	PagoPendiente  = "pendiente"
	PagoCompletado = "completado"
	PagoRechazado  = "rechazado"
)

// Pago is a payment against a maintenance work order, made by a company.
type Pago struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CodigoPago      string          `gorm:"uniqueIndex;not null"`
	FechaPago       time.Time       `gorm:"not null"`
	Monto           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Metodo          string          `gorm:"type:varchar(20);not null"`
	Referencia      *string
	Estado          string `gorm:"type:varchar(20);not null;default:'pendiente'"`
	Notas           *string
	MantenimientoID uuid.UUID `gorm:"type:uuid;index;not null"`
	EmpresaID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Mantenimiento *Mantenimiento `gorm:"foreignKey:MantenimientoID"`
	Empresa       *Empresa       `gorm:"foreignKey:EmpresaID"`
}

func (Pago) TableName() string { return "pagos" }

// MetodoPagoValido reports whether metodo belongs to the enumerated set.
func MetodoPagoValido(metodo string) bool {
	switch metodo {
	case MetodoEfectivo, MetodoTarjeta, MetodoTransferencia:
		return true
	}
	return false
}

// EstadoPagoValido reports whether estado belongs to the enumerated set.
func EstadoPagoValido(estado string) bool {
	switch estado {
	case PagoPendiente, PagoCompletado, PagoRechazado:
		return true
	}
	return false
}
