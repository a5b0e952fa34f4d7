package service

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
)

// EmpleadoService defines business operations for employees.
type EmpleadoService interface {
	Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Listar(ctx context.Context) ([]dto.EmpleadoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Buscar(ctx context.Context, q string) ([]dto.EmpleadoResponse, error)
}

type empleadoService struct {
	repo      repository.EmpleadoRepository
	cargoRepo repository.CargoRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository, cargoRepo repository.CargoRepository) EmpleadoService {
	return &empleadoService{repo: repo, cargoRepo: cargoRepo}
}

func mapEmpleado(e model.Empleado) dto.EmpleadoResponse {
	resp := dto.EmpleadoResponse{
		ID:        e.ID.String(),
		Documento: e.Documento,
		Nombre:    e.Nombre,
		Apellido:  e.Apellido,
		Telefono:  e.Telefono,
		Email:     e.Email,
	}
	if e.Cargo != nil {
		resp.Cargo = &dto.CargoResponse{
			ID:          e.Cargo.ID.String(),
			Nombre:      e.Cargo.Nombre,
			Descripcion: e.Cargo.Descripcion,
		}
	}
	return resp
}

func (s *empleadoService) Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	cargoID, err := parseUUID("cargo_id", req.CargoID)
	if err != nil {
		return nil, err
	}
	if _, err := s.cargoRepo.ObtenerPorID(ctx, cargoID); err != nil {
		if noEncontrado(err) {
			return nil, apierror.ValidationField("cargo_id", "el cargo no existe")
		}
		return nil, err
	}

	existing, err := s.repo.ObtenerPorDocumento(ctx, req.Documento)
	if err != nil && !noEncontrado(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.ValidationField("documento", "ya existe un empleado con ese documento")
	}

	e := &model.Empleado{
		Documento: req.Documento,
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Email:     req.Email,
		CargoID:   cargoID,
	}
	if err := s.repo.Crear(ctx, e); err != nil {
		return nil, duplicado(err, "documento", "ya existe un empleado con ese documento")
	}
	creado, err := s.repo.ObtenerPorID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	resp := mapEmpleado(*creado)
	return &resp, nil
}

func (s *empleadoService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmpleadoResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapEmpleado(e))
	}
	return resp, nil
}

func (s *empleadoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("empleado no encontrado")
		}
		return nil, err
	}
	resp := mapEmpleado(*e)
	return &resp, nil
}

func (s *empleadoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("empleado no encontrado")
		}
		return nil, err
	}

	if req.Documento != nil && *req.Documento != e.Documento {
		existing, err := s.repo.ObtenerPorDocumento(ctx, *req.Documento)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("documento", "ya existe un empleado con ese documento")
		}
		e.Documento = *req.Documento
	}
	if req.CargoID != nil {
		cargoID, err := parseUUID("cargo_id", *req.CargoID)
		if err != nil {
			return nil, err
		}
		if _, err := s.cargoRepo.ObtenerPorID(ctx, cargoID); err != nil {
			if noEncontrado(err) {
				return nil, apierror.ValidationField("cargo_id", "el cargo no existe")
			}
			return nil, err
		}
		e.CargoID = cargoID
	}
	if req.Nombre != nil {
		e.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		e.Apellido = *req.Apellido
	}
	if req.Telefono != nil {
		e.Telefono = *req.Telefono
	}
	if req.Email != nil {
		e.Email = req.Email
	}

	if err := s.repo.Actualizar(ctx, e); err != nil {
		return nil, duplicado(err, "documento", "ya existe un empleado con ese documento")
	}
	resp := mapEmpleado(*e)
	return &resp, nil
}

func (s *empleadoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("empleado no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

func (s *empleadoService) Buscar(ctx context.Context, q string) ([]dto.EmpleadoResponse, error) {
	list, err := s.repo.Buscar(ctx, q)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmpleadoResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapEmpleado(e))
	}
	return resp, nil
}
