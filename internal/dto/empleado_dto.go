package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearEmpleadoRequest struct {
	Documento string  `json:"documento" validate:"required,min=5,max=20"`
	Nombre    string  `json:"nombre"    validate:"required,min=2,max=100"`
	Apellido  string  `json:"apellido"  validate:"required,min=2,max=100"`
	Telefono  string  `json:"telefono"  validate:"required,min=7,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	CargoID   string  `json:"cargo_id"  validate:"required,uuid"`
}

type ActualizarEmpleadoRequest struct {
	Documento *string `json:"documento" validate:"omitempty,min=5,max=20"`
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=100"`
	Apellido  *string `json:"apellido"  validate:"omitempty,min=2,max=100"`
	Telefono  *string `json:"telefono"  validate:"omitempty,min=7,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	CargoID   *string `json:"cargo_id"  validate:"omitempty,uuid"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EmpleadoResponse struct {
	ID        string         `json:"id"`
	Documento string         `json:"documento"`
	Nombre    string         `json:"nombre"`
	Apellido  string         `json:"apellido"`
	Telefono  string         `json:"telefono"`
	Email     *string        `json:"email,omitempty"`
	Cargo     *CargoResponse `json:"cargo,omitempty"`
}
