package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearMaquinaRequest struct {
	Tipo        string `json:"tipo"         validate:"required,min=2,max=150"`
	CategoriaID string `json:"categoria_id" validate:"required,uuid"`
	Estado      string `json:"estado"       validate:"omitempty,oneof=disponible ocupada mantenimiento"`
}

type ActualizarMaquinaRequest struct {
	Tipo        *string `json:"tipo"         validate:"omitempty,min=2,max=150"`
	CategoriaID *string `json:"categoria_id" validate:"omitempty,uuid"`
	Estado      *string `json:"estado"       validate:"omitempty,oneof=disponible ocupada mantenimiento"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type MaquinaResponse struct {
	ID             string                       `json:"id"`
	Tipo           string                       `json:"tipo"`
	Estado         string                       `json:"estado"`
	Categoria      *CategoriaMaquinariaResponse `json:"categoria,omitempty"`
	Mantenimientos []MantenimientoResponse      `json:"mantenimientos,omitempty"`
}
