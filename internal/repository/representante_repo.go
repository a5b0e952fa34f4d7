package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepresentanteRepository defines CRUD operations for company representatives.
type RepresentanteRepository interface {
	Crear(ctx context.Context, rep *model.Representante) error
	Listar(ctx context.Context) ([]model.Representante, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Representante, error)
	ObtenerPorCedula(ctx context.Context, cedula string) (*model.Representante, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Representante, error)
	Actualizar(ctx context.Context, rep *model.Representante) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type representanteRepository struct{ db *gorm.DB }

func NewRepresentanteRepository(db *gorm.DB) RepresentanteRepository {
	return &representanteRepository{db: db}
}

func (r *representanteRepository) Crear(ctx context.Context, rep *model.Representante) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *representanteRepository) Listar(ctx context.Context) ([]model.Representante, error) {
	var list []model.Representante
	err := r.db.WithContext(ctx).Preload("Empresa").Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *representanteRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Representante, error) {
	var rep model.Representante
	err := r.db.WithContext(ctx).Preload("Empresa").First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *representanteRepository) ObtenerPorCedula(ctx context.Context, cedula string) (*model.Representante, error) {
	var rep model.Representante
	err := r.db.WithContext(ctx).Where("cedula = ?", cedula).First(&rep).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *representanteRepository) ObtenerPorEmail(ctx context.Context, email string) (*model.Representante, error) {
	var rep model.Representante
	err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&rep).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *representanteRepository) Actualizar(ctx context.Context, rep *model.Representante) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *representanteRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Representante{}, "id = ?", id).Error
}
