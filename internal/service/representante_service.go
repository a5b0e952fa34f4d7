package service

import (
	"context"
	"errors"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepresentanteService defines business operations for company representatives.
type RepresentanteService interface {
	Crear(ctx context.Context, req dto.CrearRepresentanteRequest) (*dto.RepresentanteResponse, error)
	Listar(ctx context.Context) ([]dto.RepresentanteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.RepresentanteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRepresentanteRequest) (*dto.RepresentanteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type representanteService struct {
	repo        repository.RepresentanteRepository
	empresaRepo repository.EmpresaRepository
}

func NewRepresentanteService(repo repository.RepresentanteRepository, empresaRepo repository.EmpresaRepository) RepresentanteService {
	return &representanteService{repo: repo, empresaRepo: empresaRepo}
}

func mapRepresentante(r model.Representante) dto.RepresentanteResponse {
	resp := dto.RepresentanteResponse{
		ID:       r.ID.String(),
		Nombre:   r.Nombre,
		Cedula:   r.Cedula,
		Telefono: r.Telefono,
		Email:    r.Email,
	}
	if r.Empresa != nil {
		e := mapEmpresa(*r.Empresa)
		resp.Empresa = &e
	}
	return resp
}

func (s *representanteService) Crear(ctx context.Context, req dto.CrearRepresentanteRequest) (*dto.RepresentanteResponse, error) {
	empresaID, err := parseUUID("empresa_id", req.EmpresaID)
	if err != nil {
		return nil, err
	}
	if _, err := s.empresaRepo.ObtenerPorID(ctx, empresaID); err != nil {
		if noEncontrado(err) {
			return nil, apierror.ValidationField("empresa_id", "la empresa no existe")
		}
		return nil, err
	}

	if existing, err := s.repo.ObtenerPorCedula(ctx, req.Cedula); err != nil && !noEncontrado(err) {
		return nil, err
	} else if existing != nil {
		return nil, apierror.ValidationField("cedula", "ya existe un representante con esa cedula")
	}
	if existing, err := s.repo.ObtenerPorEmail(ctx, req.Email); err != nil && !noEncontrado(err) {
		return nil, err
	} else if existing != nil {
		return nil, apierror.ValidationField("email", "ya existe un representante con ese email")
	}

	r := &model.Representante{
		Nombre:    req.Nombre,
		Cedula:    req.Cedula,
		Telefono:  req.Telefono,
		Email:     req.Email,
		EmpresaID: empresaID,
	}
	if err := s.repo.Crear(ctx, r); err != nil {
		return nil, s.duplicadoRepresentante(ctx, err, uuid.Nil, r.Email)
	}
	creado, err := s.repo.ObtenerPorID(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	resp := mapRepresentante(*creado)
	return &resp, nil
}

func (s *representanteService) Listar(ctx context.Context) ([]dto.RepresentanteResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RepresentanteResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, mapRepresentante(r))
	}
	return resp, nil
}

func (s *representanteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.RepresentanteResponse, error) {
	r, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("representante no encontrado")
		}
		return nil, err
	}
	resp := mapRepresentante(*r)
	return &resp, nil
}

func (s *representanteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRepresentanteRequest) (*dto.RepresentanteResponse, error) {
	r, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("representante no encontrado")
		}
		return nil, err
	}

	if req.Cedula != nil && *req.Cedula != r.Cedula {
		existing, err := s.repo.ObtenerPorCedula(ctx, *req.Cedula)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("cedula", "ya existe un representante con esa cedula")
		}
		r.Cedula = *req.Cedula
	}
	if req.Email != nil && *req.Email != r.Email {
		existing, err := s.repo.ObtenerPorEmail(ctx, *req.Email)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("email", "ya existe un representante con ese email")
		}
		r.Email = *req.Email
	}
	if req.EmpresaID != nil {
		empresaID, err := parseUUID("empresa_id", *req.EmpresaID)
		if err != nil {
			return nil, err
		}
		if _, err := s.empresaRepo.ObtenerPorID(ctx, empresaID); err != nil {
			if noEncontrado(err) {
				return nil, apierror.ValidationField("empresa_id", "la empresa no existe")
			}
			return nil, err
		}
		r.EmpresaID = empresaID
	}
	if req.Nombre != nil {
		r.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		r.Telefono = *req.Telefono
	}

	if err := s.repo.Actualizar(ctx, r); err != nil {
		return nil, s.duplicadoRepresentante(ctx, err, id, r.Email)
	}
	resp := mapRepresentante(*r)
	return &resp, nil
}

// duplicadoRepresentante resolves which of the two unique columns collided
// when a write hits a constraint that a concurrent writer created after the
// pre-flight checks passed. propio excludes the caller's own row on updates.
func (s *representanteService) duplicadoRepresentante(ctx context.Context, err error, propio uuid.UUID, email string) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	if existing, lookupErr := s.repo.ObtenerPorEmail(ctx, email); lookupErr == nil && existing != nil && existing.ID != propio {
		return apierror.ValidationField("email", "ya existe un representante con ese email")
	}
	return apierror.ValidationField("cedula", "ya existe un representante con esa cedula")
}

func (s *representanteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("representante no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}
