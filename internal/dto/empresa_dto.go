package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearEmpresaRequest struct {
	NIT           string `json:"nit"            validate:"required,min=5,max=20"`
	NombreEmpresa string `json:"nombre_empresa" validate:"required,min=2,max=150"`
	Direccion     string `json:"direccion"      validate:"required,min=2,max=150"`
	Ciudad        string `json:"ciudad"         validate:"required,min=2,max=100"`
	Telefono      string `json:"telefono"       validate:"required,min=7,max=20"`
}

type ActualizarEmpresaRequest struct {
	NIT           *string `json:"nit"            validate:"omitempty,min=5,max=20"`
	NombreEmpresa *string `json:"nombre_empresa" validate:"omitempty,min=2,max=150"`
	Direccion     *string `json:"direccion"      validate:"omitempty,min=2,max=150"`
	Ciudad        *string `json:"ciudad"         validate:"omitempty,min=2,max=100"`
	Telefono      *string `json:"telefono"       validate:"omitempty,min=7,max=20"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EmpresaResponse struct {
	ID            string                 `json:"id"`
	NIT           string                 `json:"nit"`
	NombreEmpresa string                 `json:"nombre_empresa"`
	Direccion     string                 `json:"direccion"`
	Ciudad        string                 `json:"ciudad"`
	Telefono      string                 `json:"telefono"`
	Representante *RepresentanteResponse `json:"representante,omitempty"`
}

// EmpresaConSolicitudesResponse carries the request count for ranking reports.
type EmpresaConSolicitudesResponse struct {
	Empresa          EmpresaResponse `json:"empresa"`
	TotalSolicitudes int64           `json:"total_solicitudes"`
}
