package service

import (
	"context"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
)

// CategoriaMaquinariaService defines business operations for machinery categories.
type CategoriaMaquinariaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaMaquinariaRequest) (*dto.CategoriaMaquinariaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaMaquinariaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.CategoriaMaquinariaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaMaquinariaRequest) (*dto.CategoriaMaquinariaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaMaquinariaService struct {
	repo repository.CategoriaMaquinariaRepository
}

func NewCategoriaMaquinariaService(repo repository.CategoriaMaquinariaRepository) CategoriaMaquinariaService {
	return &categoriaMaquinariaService{repo: repo}
}

func mapCategoriaMaquinaria(c model.CategoriaMaquinaria) dto.CategoriaMaquinariaResponse {
	resp := dto.CategoriaMaquinariaResponse{
		ID:          c.ID.String(),
		Tipo:        c.Tipo,
		Descripcion: c.Descripcion,
	}
	for _, m := range c.Maquinas {
		resp.Maquinas = append(resp.Maquinas, mapMaquina(m))
	}
	return resp
}

func (s *categoriaMaquinariaService) Crear(ctx context.Context, req dto.CrearCategoriaMaquinariaRequest) (*dto.CategoriaMaquinariaResponse, error) {
	c := &model.CategoriaMaquinaria{Tipo: req.Tipo, Descripcion: req.Descripcion}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoriaMaquinaria(*c)
	return &resp, nil
}

func (s *categoriaMaquinariaService) Listar(ctx context.Context) ([]dto.CategoriaMaquinariaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaMaquinariaResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, mapCategoriaMaquinaria(c))
	}
	return resp, nil
}

func (s *categoriaMaquinariaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.CategoriaMaquinariaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("categoria no encontrada")
		}
		return nil, err
	}
	resp := mapCategoriaMaquinaria(*c)
	return &resp, nil
}

func (s *categoriaMaquinariaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaMaquinariaRequest) (*dto.CategoriaMaquinariaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("categoria no encontrada")
		}
		return nil, err
	}

	if req.Tipo != nil {
		c.Tipo = *req.Tipo
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoriaMaquinaria(*c)
	return &resp, nil
}

func (s *categoriaMaquinariaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("categoria no encontrada")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}
