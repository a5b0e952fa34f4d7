package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaquinaRepository defines CRUD plus reporting queries for machines.
type MaquinaRepository interface {
	Crear(ctx context.Context, m *model.Maquina) error
	Listar(ctx context.Context) ([]model.Maquina, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Maquina, error)
	Actualizar(ctx context.Context, m *model.Maquina) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	Existe(ctx context.Context, id uuid.UUID) (bool, error)
	PesadasConMantenimientoCostoso(ctx context.Context, umbral decimal.Decimal) ([]model.Maquina, error)
}

type maquinaRepository struct{ db *gorm.DB }

func NewMaquinaRepository(db *gorm.DB) MaquinaRepository {
	return &maquinaRepository{db: db}
}

func (r *maquinaRepository) Crear(ctx context.Context, m *model.Maquina) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *maquinaRepository) Listar(ctx context.Context) ([]model.Maquina, error) {
	var list []model.Maquina
	err := r.db.WithContext(ctx).Preload("Categoria").Order("tipo asc").Find(&list).Error
	return list, err
}

func (r *maquinaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Maquina, error) {
	var m model.Maquina
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Mantenimientos").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maquinaRepository) Actualizar(ctx context.Context, m *model.Maquina) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *maquinaRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Maquina{}, "id = ?", id).Error
}

func (r *maquinaRepository) Existe(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Maquina{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// PesadasConMantenimientoCostoso returns heavy-category machines having at
// least one maintenance record whose cost exceeds umbral. The preloaded
// Mantenimientos of each returned machine carry only the matching costly
// records, not all of them.
func (r *maquinaRepository) PesadasConMantenimientoCostoso(ctx context.Context, umbral decimal.Decimal) ([]model.Maquina, error) {
	var list []model.Maquina
	err := r.db.WithContext(ctx).
		Joins("JOIN categorias_maquinarias ON categorias_maquinarias.id = maquinas.categoria_id").
		Where("categorias_maquinarias.tipo = ?", model.CategoriaPesada).
		Where("EXISTS (SELECT 1 FROM mantenimientos WHERE mantenimientos.maquina_id = maquinas.id AND mantenimientos.costo > ?)", umbral).
		Preload("Categoria").
		Preload("Mantenimientos", "costo > ?", umbral).
		Order("maquinas.tipo asc").
		Find(&list).Error
	return list, err
}
