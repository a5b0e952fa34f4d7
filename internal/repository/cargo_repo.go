package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CargoRepository defines CRUD operations for job titles.
type CargoRepository interface {
	Crear(ctx context.Context, c *model.Cargo) error
	Listar(ctx context.Context) ([]model.Cargo, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cargo, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Cargo, error)
	Actualizar(ctx context.Context, c *model.Cargo) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type cargoRepository struct{ db *gorm.DB }

func NewCargoRepository(db *gorm.DB) CargoRepository {
	return &cargoRepository{db: db}
}

func (r *cargoRepository) Crear(ctx context.Context, c *model.Cargo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cargoRepository) Listar(ctx context.Context) ([]model.Cargo, error) {
	var list []model.Cargo
	err := r.db.WithContext(ctx).Preload("Empleados").Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *cargoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cargo, error) {
	var c model.Cargo
	err := r.db.WithContext(ctx).Preload("Empleados").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cargoRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Cargo, error) {
	var c model.Cargo
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cargoRepository) Actualizar(ctx context.Context, c *model.Cargo) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cargoRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cargo{}, "id = ?", id).Error
}
