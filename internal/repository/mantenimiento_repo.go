package repository

import (
	"context"
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EstadisticasMantenimientos holds the aggregate cost figures over all work orders.
type EstadisticasMantenimientos struct {
	Total         int64
	CostoTotal    decimal.Decimal
	CostoPromedio decimal.Decimal
	CostoMinimo   decimal.Decimal
	CostoMaximo   decimal.Decimal
}

// MantenimientoRepository defines CRUD plus reporting queries for work orders.
type MantenimientoRepository interface {
	Crear(ctx context.Context, m *model.Mantenimiento) error
	Listar(ctx context.Context) ([]model.Mantenimiento, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Mantenimiento, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Mantenimiento, error)
	Actualizar(ctx context.Context, m *model.Mantenimiento) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarPagos(ctx context.Context, id uuid.UUID) (int64, error)
	Estadisticas(ctx context.Context) (*EstadisticasMantenimientos, error)
	Buscar(ctx context.Context, q string) ([]model.Mantenimiento, error)
	PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]model.Mantenimiento, error)
	PorCostoMinimo(ctx context.Context, min decimal.Decimal) ([]model.Mantenimiento, error)
}

type mantenimientoRepository struct{ db *gorm.DB }

func NewMantenimientoRepository(db *gorm.DB) MantenimientoRepository {
	return &mantenimientoRepository{db: db}
}

func (r *mantenimientoRepository) Crear(ctx context.Context, m *model.Mantenimiento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mantenimientoRepository) Listar(ctx context.Context) ([]model.Mantenimiento, error) {
	var list []model.Mantenimiento
	err := r.db.WithContext(ctx).Preload("Maquina").Preload("Pagos").
		Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *mantenimientoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Mantenimiento, error) {
	var m model.Mantenimiento
	err := r.db.WithContext(ctx).Preload("Maquina").Preload("Pagos").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mantenimientoRepository) ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Mantenimiento, error) {
	var m model.Mantenimiento
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mantenimientoRepository) Actualizar(ctx context.Context, m *model.Mantenimiento) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *mantenimientoRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Mantenimiento{}, "id = ?", id).Error
}

func (r *mantenimientoRepository) ContarPagos(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pago{}).
		Where("mantenimiento_id = ?", id).Count(&n).Error
	return n, err
}

func (r *mantenimientoRepository) Estadisticas(ctx context.Context) (*EstadisticasMantenimientos, error) {
	type fila struct {
		Total    int64
		Suma     decimal.Decimal
		Promedio decimal.Decimal
		Minimo   decimal.Decimal
		Maximo   decimal.Decimal
	}
	var f fila
	err := r.db.WithContext(ctx).Model(&model.Mantenimiento{}).
		Select("count(*) as total, coalesce(sum(costo),0) as suma, coalesce(avg(costo),0) as promedio, coalesce(min(costo),0) as minimo, coalesce(max(costo),0) as maximo").
		Scan(&f).Error
	if err != nil {
		return nil, err
	}
	return &EstadisticasMantenimientos{
		Total:         f.Total,
		CostoTotal:    f.Suma,
		CostoPromedio: f.Promedio.Round(2),
		CostoMinimo:   f.Minimo,
		CostoMaximo:   f.Maximo,
	}, nil
}

func (r *mantenimientoRepository) Buscar(ctx context.Context, q string) ([]model.Mantenimiento, error) {
	var list []model.Mantenimiento
	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).Preload("Maquina").
		Where("codigo ILIKE ? OR nombre ILIKE ?", pattern, pattern).
		Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *mantenimientoRepository) PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]model.Mantenimiento, error) {
	var list []model.Mantenimiento
	err := r.db.WithContext(ctx).Preload("Maquina").
		Where("fecha_entrega >= ? AND fecha_entrega <= ?", desde, hasta).
		Order("fecha_entrega asc").Find(&list).Error
	return list, err
}

func (r *mantenimientoRepository) PorCostoMinimo(ctx context.Context, min decimal.Decimal) ([]model.Mantenimiento, error) {
	var list []model.Mantenimiento
	err := r.db.WithContext(ctx).Preload("Maquina").
		Where("costo >= ?", min).
		Order("costo desc").Find(&list).Error
	return list, err
}
