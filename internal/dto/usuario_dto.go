package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"      validate:"required,oneof=admin empleado"`
}

type ActualizarUsuarioRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Rol      *string `json:"rol"      validate:"omitempty,oneof=admin empleado"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// EstadisticasUsuariosResponse aggregates user counts and role percentages.
// Percentages are rounded to 2 decimals and are 0 when there are no users.
type EstadisticasUsuariosResponse struct {
	Total       int64              `json:"total"`
	PorRol      map[string]int64   `json:"por_rol"`
	Porcentajes map[string]float64 `json:"porcentajes"`
}
