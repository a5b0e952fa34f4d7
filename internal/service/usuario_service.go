package service

import (
	"context"
	"math"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioService covers admin-managed user records and user statistics.
type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Obtener(ctx context.Context, principal Principal, id uuid.UUID) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, principal Principal, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, principal Principal, id uuid.UUID) error
	Estadisticas(ctx context.Context) (*dto.EstadisticasUsuariosResponse, error)
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:     u.ID.String(),
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
	}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if existing, err := s.repo.ObtenerPorEmail(ctx, req.Email); err != nil && !noEncontrado(err) {
		return nil, err
	} else if existing != nil {
		return nil, apierror.ValidationField("email", "ya existe un usuario con ese email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	u := &model.Usuario{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
	}
	if err := s.repo.Crear(ctx, u); err != nil {
		return nil, duplicado(err, "email", "ya existe un usuario con ese email")
	}
	resp := mapUsuario(*u)
	return &resp, nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, mapUsuario(u))
	}
	return resp, nil
}

// Obtener returns a user record. Non-admins may only read their own record.
func (s *usuarioService) Obtener(ctx context.Context, principal Principal, id uuid.UUID) (*dto.UsuarioResponse, error) {
	if principal.Rol != model.RolAdmin && principal.ID != id {
		return nil, apierror.Forbidden("no tiene permiso para consultar este usuario")
	}
	u, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("usuario no encontrado")
		}
		return nil, err
	}
	resp := mapUsuario(*u)
	return &resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, principal Principal, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if principal.Rol != model.RolAdmin && principal.ID != id {
		return nil, apierror.Forbidden("no tiene permiso para modificar este usuario")
	}
	// Only admins may change roles
	if req.Rol != nil && principal.Rol != model.RolAdmin {
		return nil, apierror.Forbidden("solo un administrador puede cambiar el rol")
	}

	u, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("usuario no encontrado")
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		existing, err := s.repo.ObtenerPorEmail(ctx, *req.Email)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("email", "ya existe un usuario con ese email")
		}
		u.Email = *req.Email
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		u.Rol = *req.Rol
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Actualizar(ctx, u); err != nil {
		return nil, duplicado(err, "email", "ya existe un usuario con ese email")
	}
	resp := mapUsuario(*u)
	return &resp, nil
}

// Eliminar removes a user. Self-deletion is blocked, and only admins may
// delete other users' records.
func (s *usuarioService) Eliminar(ctx context.Context, principal Principal, id uuid.UUID) error {
	if principal.ID == id {
		return apierror.Forbidden("no puede eliminar su propia cuenta")
	}
	if principal.Rol != model.RolAdmin {
		return apierror.Forbidden("solo un administrador puede eliminar usuarios")
	}
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("usuario no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

// Estadisticas returns the total user count, per-role counts and per-role
// percentages rounded to 2 decimals. An empty table yields 0 percentages.
func (s *usuarioService) Estadisticas(ctx context.Context) (*dto.EstadisticasUsuariosResponse, error) {
	porRol, err := s.repo.ContarPorRol(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range porRol {
		total += n
	}

	porcentajes := make(map[string]float64, 2)
	for _, rol := range []string{model.RolAdmin, model.RolEmpleado} {
		if _, ok := porRol[rol]; !ok {
			porRol[rol] = 0
		}
		if total == 0 {
			porcentajes[rol] = 0
			continue
		}
		pct := float64(porRol[rol]) / float64(total) * 100
		porcentajes[rol] = math.Round(pct*100) / 100
	}

	return &dto.EstadisticasUsuariosResponse{
		Total:       total,
		PorRol:      porRol,
		Porcentajes: porcentajes,
	}, nil
}
