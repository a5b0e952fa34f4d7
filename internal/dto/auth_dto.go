package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type RegistrarRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ActualizarPerfilRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Email  *string `json:"email"  validate:"omitempty,email"`
}

type CambiarPasswordRequest struct {
	PasswordActual string `json:"password_actual" validate:"required"`
	PasswordNueva  string `json:"password_nueva"  validate:"required,min=8"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	User        UsuarioResponse `json:"user"`
}

type MensajeResponse struct {
	Message string `json:"message"`
}
