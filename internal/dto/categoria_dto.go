package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaMaquinariaRequest struct {
	Tipo        string  `json:"tipo"        validate:"required,oneof=lijera pesada"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarCategoriaMaquinariaRequest struct {
	Tipo        *string `json:"tipo"        validate:"omitempty,oneof=lijera pesada"`
	Descripcion *string `json:"descripcion"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaMaquinariaResponse struct {
	ID          string            `json:"id"`
	Tipo        string            `json:"tipo"`
	Descripcion *string           `json:"descripcion,omitempty"`
	Maquinas    []MaquinaResponse `json:"maquinas,omitempty"`
}
