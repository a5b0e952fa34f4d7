package model

import (
	"time"

	"github.com/google/uuid"
)

// Request states. Initial state is always pendiente; every transition between
// states is permitted (no workflow ordering is enforced).
const (
	SolicitudPendiente  = "pendiente"
	SolicitudAprobada   = "aprobada"
	SolicitudRechazada  = "rechazada"
	SolicitudCompletada = "completada"
)

// Solicitud is a machinery use request with a date/time window and a set of
// machine allocations, each carrying a quantity.
type Solicitud struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID      uuid.UUID `gorm:"type:uuid;index;not null"`
	EmpresaID      uuid.UUID `gorm:"type:uuid;index;not null"`
	FechaSolicitud time.Time `gorm:"index;not null"`
	FechaUso       time.Time `gorm:"not null"`
	// HoraInicio/HoraFin use 24h "HH:MM" format; fin >= inicio
	HoraInicio string `gorm:"type:varchar(5);not null"`
	HoraFin    string `gorm:"type:varchar(5);not null"`
	Proyecto   string `gorm:"not null"`
	Ubicacion  string `gorm:"not null"`
	Estado     string `gorm:"type:varchar(20);not null;default:'pendiente'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Usuario        *Usuario           `gorm:"foreignKey:UsuarioID"`
	Empresa        *Empresa           `gorm:"foreignKey:EmpresaID"`
	Asignaciones   []SolicitudMaquina `gorm:"foreignKey:SolicitudID"`
	Mantenimientos []Mantenimiento    `gorm:"foreignKey:SolicitudID"`
}

func (Solicitud) TableName() string { return "solicitudes" }

// EstadoSolicitudValido reports whether estado belongs to the enumerated set.
func EstadoSolicitudValido(estado string) bool {
	switch estado {
	case SolicitudPendiente, SolicitudAprobada, SolicitudRechazada, SolicitudCompletada:
		return true
	}
	return false
}

// SolicitudMaquina is the allocation join row: one (solicitud, maquina) pair
// with a positive quantity. The composite unique index guarantees the replace
// operation can never leave duplicate allocations.
type SolicitudMaquina struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolicitudID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_solicitud_maquina;not null"`
	MaquinaID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_solicitud_maquina;not null"`
	Cantidad    int       `gorm:"not null;check:cantidad >= 1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Maquina *Maquina `gorm:"foreignKey:MaquinaID"`
}

func (SolicitudMaquina) TableName() string { return "solicitud_maquina" }
