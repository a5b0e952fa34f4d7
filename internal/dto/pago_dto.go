package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearPagoRequest struct {
	CodigoPago      string          `json:"codigo_pago"      validate:"required,min=2,max=50"`
	FechaPago       string          `json:"fecha_pago"       validate:"required,datetime=2006-01-02"`
	Monto           decimal.Decimal `json:"monto"            validate:"min=0"`
	Metodo          string          `json:"metodo"           validate:"required,oneof=efectivo tarjeta transferencia"`
	Referencia      *string         `json:"referencia"`
	Estado          string          `json:"estado"           validate:"omitempty,oneof=pendiente completado rechazado"`
	Notas           *string         `json:"notas"`
	MantenimientoID string          `json:"mantenimiento_id" validate:"required,uuid"`
	EmpresaID       string          `json:"empresa_id"       validate:"required,uuid"`
}

type ActualizarPagoRequest struct {
	CodigoPago      *string          `json:"codigo_pago"      validate:"omitempty,min=2,max=50"`
	FechaPago       *string          `json:"fecha_pago"       validate:"omitempty,datetime=2006-01-02"`
	Monto           *decimal.Decimal `json:"monto"`
	Metodo          *string          `json:"metodo"           validate:"omitempty,oneof=efectivo tarjeta transferencia"`
	Referencia      *string          `json:"referencia"`
	Estado          *string          `json:"estado"           validate:"omitempty,oneof=pendiente completado rechazado"`
	Notas           *string          `json:"notas"`
	MantenimientoID *string          `json:"mantenimiento_id" validate:"omitempty,uuid"`
	EmpresaID       *string          `json:"empresa_id"       validate:"omitempty,uuid"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PagoResponse struct {
	ID         string          `json:"id"`
	CodigoPago string          `json:"codigo_pago"`
	FechaPago  string          `json:"fecha_pago"`
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia *string         `json:"referencia,omitempty"`
	Estado     string          `json:"estado"`
	Notas      *string         `json:"notas,omitempty"`
	Empresa    *EmpresaResponse `json:"empresa,omitempty"`
}
