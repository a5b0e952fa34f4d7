package service

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
)

// CargoService defines business operations for job titles.
type CargoService interface {
	Crear(ctx context.Context, req dto.CrearCargoRequest) (*dto.CargoResponse, error)
	Listar(ctx context.Context) ([]dto.CargoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.CargoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCargoRequest) (*dto.CargoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type cargoService struct {
	repo repository.CargoRepository
}

func NewCargoService(repo repository.CargoRepository) CargoService {
	return &cargoService{repo: repo}
}

func mapCargo(c model.Cargo) dto.CargoResponse {
	resp := dto.CargoResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
	for _, e := range c.Empleados {
		resp.Empleados = append(resp.Empleados, mapEmpleado(e))
	}
	return resp
}

func (s *cargoService) Crear(ctx context.Context, req dto.CrearCargoRequest) (*dto.CargoResponse, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !noEncontrado(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.ValidationField("nombre", "ya existe un cargo con ese nombre")
	}

	c := &model.Cargo{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, duplicado(err, "nombre", "ya existe un cargo con ese nombre")
	}
	resp := mapCargo(*c)
	return &resp, nil
}

func (s *cargoService) Listar(ctx context.Context) ([]dto.CargoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CargoResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, mapCargo(c))
	}
	return resp, nil
}

func (s *cargoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.CargoResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("cargo no encontrado")
		}
		return nil, err
	}
	resp := mapCargo(*c)
	return &resp, nil
}

func (s *cargoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCargoRequest) (*dto.CargoResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("cargo no encontrado")
		}
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != c.Nombre {
		existing, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("nombre", "ya existe un cargo con ese nombre")
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, duplicado(err, "nombre", "ya existe un cargo con ese nombre")
	}
	resp := mapCargo(*c)
	return &resp, nil
}

func (s *cargoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("cargo no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}
