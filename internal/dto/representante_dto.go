package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearRepresentanteRequest struct {
	Nombre    string `json:"nombre"     validate:"required,min=2,max=100"`
	Cedula    string `json:"cedula"     validate:"required,min=5,max=20"`
	Telefono  string `json:"telefono"   validate:"required,min=7,max=20"`
	Email     string `json:"email"      validate:"required,email"`
	EmpresaID string `json:"empresa_id" validate:"required,uuid"`
}

type ActualizarRepresentanteRequest struct {
	Nombre    *string `json:"nombre"     validate:"omitempty,min=2,max=100"`
	Cedula    *string `json:"cedula"     validate:"omitempty,min=5,max=20"`
	Telefono  *string `json:"telefono"   validate:"omitempty,min=7,max=20"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	EmpresaID *string `json:"empresa_id" validate:"omitempty,uuid"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type RepresentanteResponse struct {
	ID       string           `json:"id"`
	Nombre   string           `json:"nombre"`
	Cedula   string           `json:"cedula"`
	Telefono string           `json:"telefono"`
	Email    string           `json:"email"`
	Empresa  *EmpresaResponse `json:"empresa,omitempty"`
}
