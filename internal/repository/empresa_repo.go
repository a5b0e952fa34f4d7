package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmpresaRepository defines CRUD plus ranking queries for companies.
type EmpresaRepository interface {
	Crear(ctx context.Context, e *model.Empresa) error
	Listar(ctx context.Context) ([]model.Empresa, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error)
	ObtenerPorNIT(ctx context.Context, nit string) (*model.Empresa, error)
	Actualizar(ctx context.Context, e *model.Empresa) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ConMasSolicitudes(ctx context.Context) (*model.Empresa, int64, error)
	SinSolicitudes(ctx context.Context) ([]model.Empresa, error)
}

type empresaRepository struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository {
	return &empresaRepository{db: db}
}

func (r *empresaRepository) Crear(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepository) Listar(ctx context.Context) ([]model.Empresa, error) {
	var list []model.Empresa
	err := r.db.WithContext(ctx).Preload("Representante").
		Order("nombre_empresa asc").Find(&list).Error
	return list, err
}

func (r *empresaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).Preload("Representante").First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepository) ObtenerPorNIT(ctx context.Context, nit string) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).Where("nit = ?", nit).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepository) Actualizar(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empresaRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Empresa{}, "id = ?", id).Error
}

// ConMasSolicitudes returns the company with the highest request count.
// Ties resolve to the earliest-created company.
func (r *empresaRepository) ConMasSolicitudes(ctx context.Context) (*model.Empresa, int64, error) {
	type fila struct {
		EmpresaID uuid.UUID
		Total     int64
	}
	var f fila
	err := r.db.WithContext(ctx).Model(&model.Empresa{}).
		Select("empresas.id as empresa_id, count(solicitudes.id) as total").
		Joins("JOIN solicitudes ON solicitudes.empresa_id = empresas.id").
		Group("empresas.id, empresas.created_at").
		Order("total desc, empresas.created_at asc").
		Limit(1).Scan(&f).Error
	if err != nil {
		return nil, 0, err
	}
	if f.EmpresaID == uuid.Nil {
		return nil, 0, gorm.ErrRecordNotFound
	}
	e, err := r.ObtenerPorID(ctx, f.EmpresaID)
	if err != nil {
		return nil, 0, err
	}
	return e, f.Total, nil
}

// SinSolicitudes returns companies with zero associated requests.
func (r *empresaRepository) SinSolicitudes(ctx context.Context) ([]model.Empresa, error) {
	var list []model.Empresa
	err := r.db.WithContext(ctx).Preload("Representante").
		Where("NOT EXISTS (SELECT 1 FROM solicitudes WHERE solicitudes.empresa_id = empresas.id)").
		Order("nombre_empresa asc").Find(&list).Error
	return list, err
}
