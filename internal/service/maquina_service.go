package service

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaquinaService defines business operations for machines.
type MaquinaService interface {
	Crear(ctx context.Context, req dto.CrearMaquinaRequest) (*dto.MaquinaResponse, error)
	Listar(ctx context.Context) ([]dto.MaquinaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.MaquinaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaquinaRequest) (*dto.MaquinaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	PesadasConMantenimientoCostoso(ctx context.Context, umbral decimal.Decimal) ([]dto.MaquinaResponse, error)
}

type maquinaService struct {
	repo          repository.MaquinaRepository
	categoriaRepo repository.CategoriaMaquinariaRepository
}

func NewMaquinaService(repo repository.MaquinaRepository, categoriaRepo repository.CategoriaMaquinariaRepository) MaquinaService {
	return &maquinaService{repo: repo, categoriaRepo: categoriaRepo}
}

func mapMaquina(m model.Maquina) dto.MaquinaResponse {
	resp := dto.MaquinaResponse{
		ID:     m.ID.String(),
		Tipo:   m.Tipo,
		Estado: m.Estado,
	}
	if m.Categoria != nil {
		resp.Categoria = &dto.CategoriaMaquinariaResponse{
			ID:          m.Categoria.ID.String(),
			Tipo:        m.Categoria.Tipo,
			Descripcion: m.Categoria.Descripcion,
		}
	}
	for _, mt := range m.Mantenimientos {
		resp.Mantenimientos = append(resp.Mantenimientos, mapMantenimiento(mt))
	}
	return resp
}

func (s *maquinaService) Crear(ctx context.Context, req dto.CrearMaquinaRequest) (*dto.MaquinaResponse, error) {
	categoriaID, err := parseUUID("categoria_id", req.CategoriaID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID); err != nil {
		if noEncontrado(err) {
			return nil, apierror.ValidationField("categoria_id", "la categoria no existe")
		}
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = model.MaquinaDisponible
	}
	m := &model.Maquina{Tipo: req.Tipo, CategoriaID: categoriaID, Estado: estado}
	if err := s.repo.Crear(ctx, m); err != nil {
		return nil, err
	}
	creada, err := s.repo.ObtenerPorID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	resp := mapMaquina(*creada)
	return &resp, nil
}

func (s *maquinaService) Listar(ctx context.Context) ([]dto.MaquinaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaquinaResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMaquina(m))
	}
	return resp, nil
}

func (s *maquinaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.MaquinaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("maquina no encontrada")
		}
		return nil, err
	}
	resp := mapMaquina(*m)
	return &resp, nil
}

func (s *maquinaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaquinaRequest) (*dto.MaquinaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("maquina no encontrada")
		}
		return nil, err
	}

	if req.CategoriaID != nil {
		categoriaID, err := parseUUID("categoria_id", *req.CategoriaID)
		if err != nil {
			return nil, err
		}
		if _, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID); err != nil {
			if noEncontrado(err) {
				return nil, apierror.ValidationField("categoria_id", "la categoria no existe")
			}
			return nil, err
		}
		m.CategoriaID = categoriaID
	}
	if req.Tipo != nil {
		m.Tipo = *req.Tipo
	}
	if req.Estado != nil {
		m.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, m); err != nil {
		return nil, err
	}
	resp := mapMaquina(*m)
	return &resp, nil
}

func (s *maquinaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("maquina no encontrada")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

// PesadasConMantenimientoCostoso lists heavy machines with at least one
// maintenance above umbral; each machine carries only the costly records.
func (s *maquinaService) PesadasConMantenimientoCostoso(ctx context.Context, umbral decimal.Decimal) ([]dto.MaquinaResponse, error) {
	list, err := s.repo.PesadasConMantenimientoCostoso(ctx, umbral)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaquinaResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMaquina(m))
	}
	return resp, nil
}
