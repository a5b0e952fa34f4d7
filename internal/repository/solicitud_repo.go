package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SolicitudRepository handles request headers together with their machine
// allocation set. Header writes and allocation replaces always run inside a
// single transaction so a failure cannot leave a stale or partial set.
type SolicitudRepository interface {
	CrearConAsignaciones(ctx context.Context, s *model.Solicitud, asigs []model.SolicitudMaquina) error
	Listar(ctx context.Context) ([]model.Solicitud, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Solicitud, error)
	ActualizarConAsignaciones(ctx context.Context, s *model.Solicitud, asigs []model.SolicitudMaquina, reemplazar bool) error
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	PorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Solicitud, error)
	PorMes(ctx context.Context, anio, mes int) ([]model.Solicitud, error)
	TotalCantidadPorEmpresa(ctx context.Context, nombreEmpresa string) (int64, error)
}

type solicitudRepository struct{ db *gorm.DB }

func NewSolicitudRepository(db *gorm.DB) SolicitudRepository {
	return &solicitudRepository{db: db}
}

func (r *solicitudRepository) CrearConAsignaciones(ctx context.Context, s *model.Solicitud, asigs []model.SolicitudMaquina) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return replaceAsignaciones(tx, s.ID, asigs)
	})
}

func (r *solicitudRepository) Listar(ctx context.Context) ([]model.Solicitud, error) {
	var list []model.Solicitud
	err := r.db.WithContext(ctx).
		Preload("Empresa").Preload("Asignaciones").Preload("Asignaciones.Maquina").
		Order("fecha_solicitud desc").Find(&list).Error
	return list, err
}

func (r *solicitudRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Solicitud, error) {
	var s model.Solicitud
	err := r.db.WithContext(ctx).
		Preload("Empresa").Preload("Asignaciones").Preload("Asignaciones.Maquina").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solicitudRepository) ActualizarConAsignaciones(ctx context.Context, s *model.Solicitud, asigs []model.SolicitudMaquina, reemplazar bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Asignaciones", "Empresa", "Usuario", "Mantenimientos").Save(s).Error; err != nil {
			return err
		}
		if !reemplazar {
			return nil
		}
		return replaceAsignaciones(tx, s.ID, asigs)
	})
}

// replaceAsignaciones makes asigs the complete allocation set of the request:
// rows absent from the new set are removed, present ones are updated or
// inserted. Submitting the same set twice yields identical rows.
func replaceAsignaciones(tx *gorm.DB, solicitudID uuid.UUID, asigs []model.SolicitudMaquina) error {
	maquinaIDs := make([]uuid.UUID, 0, len(asigs))
	for _, a := range asigs {
		maquinaIDs = append(maquinaIDs, a.MaquinaID)
	}

	if err := tx.Where("solicitud_id = ? AND maquina_id NOT IN ?", solicitudID, maquinaIDs).
		Delete(&model.SolicitudMaquina{}).Error; err != nil {
		return err
	}

	for _, a := range asigs {
		res := tx.Model(&model.SolicitudMaquina{}).
			Where("solicitud_id = ? AND maquina_id = ?", solicitudID, a.MaquinaID).
			Update("cantidad", a.Cantidad)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			nueva := model.SolicitudMaquina{
				SolicitudID: solicitudID,
				MaquinaID:   a.MaquinaID,
				Cantidad:    a.Cantidad,
			}
			if err := tx.Create(&nueva).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *solicitudRepository) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Solicitud{}).
		Where("id = ?", id).Update("estado", estado).Error
}

// Eliminar detaches all allocations first, then deletes the header, so no
// orphaned join rows can remain.
func (r *solicitudRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("solicitud_id = ?", id).Delete(&model.SolicitudMaquina{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Solicitud{}, "id = ?", id).Error
	})
}

func (r *solicitudRepository) PorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Solicitud, error) {
	var list []model.Solicitud
	err := r.db.WithContext(ctx).
		Preload("Empresa").Preload("Asignaciones").Preload("Asignaciones.Maquina").
		Where("usuario_id = ?", usuarioID).
		Order("fecha_solicitud desc").Find(&list).Error
	return list, err
}

func (r *solicitudRepository) PorMes(ctx context.Context, anio, mes int) ([]model.Solicitud, error) {
	var list []model.Solicitud
	err := r.db.WithContext(ctx).
		Preload("Empresa").Preload("Asignaciones").Preload("Asignaciones.Maquina").
		Where("EXTRACT(YEAR FROM fecha_solicitud) = ? AND EXTRACT(MONTH FROM fecha_solicitud) = ?", anio, mes).
		Order("fecha_solicitud asc").Find(&list).Error
	return list, err
}

// TotalCantidadPorEmpresa sums the allocated machine quantity over every
// request of the company with the given name.
func (r *solicitudRepository) TotalCantidadPorEmpresa(ctx context.Context, nombreEmpresa string) (int64, error) {
	type fila struct{ Total int64 }
	var f fila
	err := r.db.WithContext(ctx).Model(&model.SolicitudMaquina{}).
		Select("coalesce(sum(solicitud_maquina.cantidad),0) as total").
		Joins("JOIN solicitudes ON solicitudes.id = solicitud_maquina.solicitud_id").
		Joins("JOIN empresas ON empresas.id = solicitudes.empresa_id").
		Where("empresas.nombre_empresa = ?", nombreEmpresa).
		Scan(&f).Error
	return f.Total, err
}
