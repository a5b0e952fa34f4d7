package repository

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for system users.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	Listar(ctx context.Context) ([]model.Usuario, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error)
	Actualizar(ctx context.Context, u *model.Usuario) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarPorRol(ctx context.Context) (map[string]int64, error)
}

type usuarioRepository struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepository) Listar(ctx context.Context) ([]model.Usuario, error) {
	var list []model.Usuario
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *usuarioRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) Actualizar(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, "id = ?", id).Error
}

func (r *usuarioRepository) ContarPorRol(ctx context.Context) (map[string]int64, error) {
	type fila struct {
		Rol   string
		Total int64
	}
	var filas []fila
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Select("rol, count(*) as total").Group("rol").Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	porRol := make(map[string]int64, len(filas))
	for _, f := range filas {
		porRol[f.Rol] = f.Total
	}
	return porRol, nil
}
