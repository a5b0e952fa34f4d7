package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCargoRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarCargoRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CargoResponse struct {
	ID          string              `json:"id"`
	Nombre      string              `json:"nombre"`
	Descripcion *string             `json:"descripcion,omitempty"`
	Empleados   []EmpleadoResponse  `json:"empleados,omitempty"`
}
