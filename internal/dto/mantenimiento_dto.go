package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearMantenimientoRequest struct {
	Codigo              string          `json:"codigo"               validate:"required,min=2,max=50"`
	Nombre              string          `json:"nombre"               validate:"required,min=2,max=150"`
	Descripcion         string          `json:"descripcion"          validate:"required"`
	Costo               decimal.Decimal `json:"costo"                validate:"min=0"`
	DuracionEstimada    int             `json:"duracion_estimada"    validate:"required,min=1,max=720"`
	ManualProcedimiento *string         `json:"manual_procedimiento"`
	// FechaEntrega must be today or later at creation time
	FechaEntrega string `json:"fecha_entrega" validate:"required,datetime=2006-01-02"`
	MaquinaID    string `json:"maquina_id"    validate:"required,uuid"`
	SolicitudID  string `json:"solicitud_id"  validate:"required,uuid"`
}

type ActualizarMantenimientoRequest struct {
	Codigo              *string          `json:"codigo"               validate:"omitempty,min=2,max=50"`
	Nombre              *string          `json:"nombre"               validate:"omitempty,min=2,max=150"`
	Descripcion         *string          `json:"descripcion"`
	Costo               *decimal.Decimal `json:"costo"`
	DuracionEstimada    *int             `json:"duracion_estimada"    validate:"omitempty,min=1,max=720"`
	ManualProcedimiento *string          `json:"manual_procedimiento"`
	FechaEntrega        *string          `json:"fecha_entrega"        validate:"omitempty,datetime=2006-01-02"`
	MaquinaID           *string          `json:"maquina_id"           validate:"omitempty,uuid"`
	SolicitudID         *string          `json:"solicitud_id"         validate:"omitempty,uuid"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type MantenimientoResponse struct {
	ID                  string           `json:"id"`
	Codigo              string           `json:"codigo"`
	Nombre              string           `json:"nombre"`
	Descripcion         string           `json:"descripcion"`
	Costo               decimal.Decimal  `json:"costo"`
	DuracionEstimada    int              `json:"duracion_estimada"`
	ManualProcedimiento *string          `json:"manual_procedimiento,omitempty"`
	FechaEntrega        string           `json:"fecha_entrega"`
	Maquina             *MaquinaResponse `json:"maquina,omitempty"`
	Pagos               []PagoResponse   `json:"pagos,omitempty"`
}

// EstadisticasMantenimientosResponse aggregates cost figures over all work orders.
type EstadisticasMantenimientosResponse struct {
	Total         int64           `json:"total"`
	CostoTotal    decimal.Decimal `json:"costo_total"`
	CostoPromedio decimal.Decimal `json:"costo_promedio"`
	CostoMinimo   decimal.Decimal `json:"costo_minimo"`
	CostoMaximo   decimal.Decimal `json:"costo_maximo"`
}
