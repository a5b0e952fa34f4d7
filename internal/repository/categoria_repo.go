package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaMaquinariaRepository defines CRUD operations for machinery categories.
type CategoriaMaquinariaRepository interface {
	Crear(ctx context.Context, c *model.CategoriaMaquinaria) error
	Listar(ctx context.Context) ([]model.CategoriaMaquinaria, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaMaquinaria, error)
	Actualizar(ctx context.Context, c *model.CategoriaMaquinaria) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaMaquinariaRepository struct{ db *gorm.DB }

func NewCategoriaMaquinariaRepository(db *gorm.DB) CategoriaMaquinariaRepository {
	return &categoriaMaquinariaRepository{db: db}
}

func (r *categoriaMaquinariaRepository) Crear(ctx context.Context, c *model.CategoriaMaquinaria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaMaquinariaRepository) Listar(ctx context.Context) ([]model.CategoriaMaquinaria, error) {
	var list []model.CategoriaMaquinaria
	err := r.db.WithContext(ctx).Preload("Maquinas").Order("tipo asc").Find(&list).Error
	return list, err
}

func (r *categoriaMaquinariaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaMaquinaria, error) {
	var c model.CategoriaMaquinaria
	err := r.db.WithContext(ctx).Preload("Maquinas").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaMaquinariaRepository) Actualizar(ctx context.Context, c *model.CategoriaMaquinaria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaMaquinariaRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoriaMaquinaria{}, "id = ?", id).Error
}
