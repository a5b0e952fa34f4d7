package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PagoRepository defines CRUD operations for payments.
type PagoRepository interface {
	Crear(ctx context.Context, p *model.Pago) error
	Listar(ctx context.Context) ([]model.Pago, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pago, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Pago, error)
	Actualizar(ctx context.Context, p *model.Pago) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type pagoRepository struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository {
	return &pagoRepository{db: db}
}

func (r *pagoRepository) Crear(ctx context.Context, p *model.Pago) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pagoRepository) Listar(ctx context.Context) ([]model.Pago, error) {
	var list []model.Pago
	err := r.db.WithContext(ctx).Preload("Empresa").Preload("Mantenimiento").
		Order("fecha_pago desc").Find(&list).Error
	return list, err
}

func (r *pagoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).Preload("Empresa").Preload("Mantenimiento").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pagoRepository) ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).Where("codigo_pago = ?", codigo).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pagoRepository) Actualizar(ctx context.Context, p *model.Pago) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pagoRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Pago{}, "id = ?", id).Error
}
