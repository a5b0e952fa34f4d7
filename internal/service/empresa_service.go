package service

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
)

// EmpresaService defines business operations for client companies.
type EmpresaService interface {
	Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error)
	Listar(ctx context.Context) ([]dto.EmpresaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.EmpresaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ConMasSolicitudes(ctx context.Context) (*dto.EmpresaConSolicitudesResponse, error)
	SinSolicitudes(ctx context.Context) ([]dto.EmpresaResponse, error)
}

type empresaService struct {
	repo repository.EmpresaRepository
}

func NewEmpresaService(repo repository.EmpresaRepository) EmpresaService {
	return &empresaService{repo: repo}
}

func mapEmpresa(e model.Empresa) dto.EmpresaResponse {
	resp := dto.EmpresaResponse{
		ID:            e.ID.String(),
		NIT:           e.NIT,
		NombreEmpresa: e.NombreEmpresa,
		Direccion:     e.Direccion,
		Ciudad:        e.Ciudad,
		Telefono:      e.Telefono,
	}
	if e.Representante != nil {
		resp.Representante = &dto.RepresentanteResponse{
			ID:       e.Representante.ID.String(),
			Nombre:   e.Representante.Nombre,
			Cedula:   e.Representante.Cedula,
			Telefono: e.Representante.Telefono,
			Email:    e.Representante.Email,
		}
	}
	return resp
}

func (s *empresaService) Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error) {
	existing, err := s.repo.ObtenerPorNIT(ctx, req.NIT)
	if err != nil && !noEncontrado(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.ValidationField("nit", "ya existe una empresa con ese nit")
	}

	e := &model.Empresa{
		NIT:           req.NIT,
		NombreEmpresa: req.NombreEmpresa,
		Direccion:     req.Direccion,
		Ciudad:        req.Ciudad,
		Telefono:      req.Telefono,
	}
	if err := s.repo.Crear(ctx, e); err != nil {
		return nil, duplicado(err, "nit", "ya existe una empresa con ese nit")
	}
	resp := mapEmpresa(*e)
	return &resp, nil
}

func (s *empresaService) Listar(ctx context.Context) ([]dto.EmpresaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapEmpresa(e))
	}
	return resp, nil
}

func (s *empresaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.EmpresaResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("empresa no encontrada")
		}
		return nil, err
	}
	resp := mapEmpresa(*e)
	return &resp, nil
}

func (s *empresaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("empresa no encontrada")
		}
		return nil, err
	}

	if req.NIT != nil && *req.NIT != e.NIT {
		existing, err := s.repo.ObtenerPorNIT(ctx, *req.NIT)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("nit", "ya existe una empresa con ese nit")
		}
		e.NIT = *req.NIT
	}
	if req.NombreEmpresa != nil {
		e.NombreEmpresa = *req.NombreEmpresa
	}
	if req.Direccion != nil {
		e.Direccion = *req.Direccion
	}
	if req.Ciudad != nil {
		e.Ciudad = *req.Ciudad
	}
	if req.Telefono != nil {
		e.Telefono = *req.Telefono
	}

	if err := s.repo.Actualizar(ctx, e); err != nil {
		return nil, duplicado(err, "nit", "ya existe una empresa con ese nit")
	}
	resp := mapEmpresa(*e)
	return &resp, nil
}

func (s *empresaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("empresa no encontrada")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

// ConMasSolicitudes returns the single company with the highest request
// count. Ties resolve to the earliest-created company.
func (s *empresaService) ConMasSolicitudes(ctx context.Context) (*dto.EmpresaConSolicitudesResponse, error) {
	e, total, err := s.repo.ConMasSolicitudes(ctx)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("ninguna empresa tiene solicitudes registradas")
		}
		return nil, err
	}
	return &dto.EmpresaConSolicitudesResponse{
		Empresa:          mapEmpresa(*e),
		TotalSolicitudes: total,
	}, nil
}

func (s *empresaService) SinSolicitudes(ctx context.Context) ([]dto.EmpresaResponse, error) {
	list, err := s.repo.SinSolicitudes(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapEmpresa(e))
	}
	return resp, nil
}
