package dto

// AsignacionMaquinaInput is one (machine, quantity) pair of a request.
// A single pair array replaces the positionally-paired id/quantity arrays of
// older clients, so mismatched lengths cannot occur.
type AsignacionMaquinaInput struct {
	MaquinaID string `json:"maquina_id" validate:"required,uuid"`
	Cantidad  int    `json:"cantidad"   validate:"required,min=1"`
}

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearSolicitudRequest struct {
	EmpresaID  string `json:"empresa_id"  validate:"required,uuid"`
	FechaUso   string `json:"fecha_uso"   validate:"required,datetime=2006-01-02"`
	HoraInicio string `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFin    string `json:"hora_fin"    validate:"required,datetime=15:04"`
	Proyecto   string `json:"proyecto"    validate:"required,min=2,max=150"`
	Ubicacion  string `json:"ubicacion"   validate:"required,min=2,max=150"`
	Maquinas   []AsignacionMaquinaInput `json:"maquinas" validate:"required,min=1,dive"`
}

type ActualizarSolicitudRequest struct {
	EmpresaID  *string `json:"empresa_id"  validate:"omitempty,uuid"`
	FechaUso   *string `json:"fecha_uso"   validate:"omitempty,datetime=2006-01-02"`
	HoraInicio *string `json:"hora_inicio" validate:"omitempty,datetime=15:04"`
	HoraFin    *string `json:"hora_fin"    validate:"omitempty,datetime=15:04"`
	Proyecto   *string `json:"proyecto"    validate:"omitempty,min=2,max=150"`
	Ubicacion  *string `json:"ubicacion"   validate:"omitempty,min=2,max=150"`
	Estado     *string `json:"estado"      validate:"omitempty,oneof=pendiente aprobada rechazada completada"`
	// When present the allocation set is fully replaced with these pairs
	Maquinas []AsignacionMaquinaInput `json:"maquinas" validate:"omitempty,min=1,dive"`
}

type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente aprobada rechazada completada"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type AsignacionMaquinaResponse struct {
	MaquinaID string           `json:"maquina_id"`
	Cantidad  int              `json:"cantidad"`
	Maquina   *MaquinaResponse `json:"maquina,omitempty"`
}

type SolicitudResponse struct {
	ID             string                      `json:"id"`
	UsuarioID      string                      `json:"usuario_id"`
	EmpresaID      string                      `json:"empresa_id"`
	FechaSolicitud string                      `json:"fecha_solicitud"`
	FechaUso       string                      `json:"fecha_uso"`
	HoraInicio     string                      `json:"hora_inicio"`
	HoraFin        string                      `json:"hora_fin"`
	Proyecto       string                      `json:"proyecto"`
	Ubicacion      string                      `json:"ubicacion"`
	Estado         string                      `json:"estado"`
	Empresa        *EmpresaResponse            `json:"empresa,omitempty"`
	Asignaciones   []AsignacionMaquinaResponse `json:"asignaciones"`
}

// TotalPorEmpresaResponse is the allocated machine-quantity sum for one company.
type TotalPorEmpresaResponse struct {
	NombreEmpresa string `json:"nombre_empresa"`
	TotalMaquinas int64  `json:"total_maquinas"`
}

// ReporteMensualResponse lists requests submitted in one calendar month.
type ReporteMensualResponse struct {
	Anio        int                 `json:"anio"`
	Mes         int                 `json:"mes"`
	Total       int                 `json:"total"`
	Solicitudes []SolicitudResponse `json:"solicitudes"`
}
