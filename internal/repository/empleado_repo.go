package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmpleadoRepository defines CRUD plus search queries for employees.
type EmpleadoRepository interface {
	Crear(ctx context.Context, e *model.Empleado) error
	Listar(ctx context.Context) ([]model.Empleado, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empleado, error)
	ObtenerPorDocumento(ctx context.Context, documento string) (*model.Empleado, error)
	Actualizar(ctx context.Context, e *model.Empleado) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	Buscar(ctx context.Context, q string) ([]model.Empleado, error)
}

type empleadoRepository struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository {
	return &empleadoRepository{db: db}
}

func (r *empleadoRepository) Crear(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepository) Listar(ctx context.Context) ([]model.Empleado, error) {
	var list []model.Empleado
	err := r.db.WithContext(ctx).Preload("Cargo").
		Order("apellido asc, nombre asc").Find(&list).Error
	return list, err
}

func (r *empleadoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Preload("Cargo").First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepository) ObtenerPorDocumento(ctx context.Context, documento string) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Preload("Cargo").Where("documento = ?", documento).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepository) Actualizar(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empleadoRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Empleado{}, "id = ?", id).Error
}

// Buscar performs a case-insensitive substring match over nombre OR email,
// ordered by nombre.
func (r *empleadoRepository) Buscar(ctx context.Context, q string) ([]model.Empleado, error) {
	var list []model.Empleado
	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).Preload("Cargo").
		Where("nombre ILIKE ? OR email ILIKE ?", pattern, pattern).
		Order("nombre asc").Find(&list).Error
	return list, err
}
