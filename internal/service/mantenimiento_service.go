package service

import (
	"context"
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MantenimientoService defines business operations for maintenance work orders.
type MantenimientoService interface {
	Crear(ctx context.Context, req dto.CrearMantenimientoRequest) (*dto.MantenimientoResponse, error)
	Listar(ctx context.Context) ([]dto.MantenimientoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.MantenimientoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMantenimientoRequest) (*dto.MantenimientoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Estadisticas(ctx context.Context) (*dto.EstadisticasMantenimientosResponse, error)
	Buscar(ctx context.Context, q string) ([]dto.MantenimientoResponse, error)
	PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]dto.MantenimientoResponse, error)
	PorCostoMinimo(ctx context.Context, min decimal.Decimal) ([]dto.MantenimientoResponse, error)
}

type mantenimientoService struct {
	repo          repository.MantenimientoRepository
	maquinaRepo   repository.MaquinaRepository
	solicitudRepo repository.SolicitudRepository
}

func NewMantenimientoService(
	repo repository.MantenimientoRepository,
	maquinaRepo repository.MaquinaRepository,
	solicitudRepo repository.SolicitudRepository,
) MantenimientoService {
	return &mantenimientoService{repo: repo, maquinaRepo: maquinaRepo, solicitudRepo: solicitudRepo}
}

func mapMantenimiento(m model.Mantenimiento) dto.MantenimientoResponse {
	resp := dto.MantenimientoResponse{
		ID:                  m.ID.String(),
		Codigo:              m.Codigo,
		Nombre:              m.Nombre,
		Descripcion:         m.Descripcion,
		Costo:               m.Costo,
		DuracionEstimada:    m.DuracionEstimada,
		ManualProcedimiento: m.ManualProcedimiento,
		FechaEntrega:        m.FechaEntrega.Format(formatoFecha),
	}
	if m.Maquina != nil {
		ma := mapMaquina(*m.Maquina)
		resp.Maquina = &ma
	}
	for _, p := range m.Pagos {
		resp.Pagos = append(resp.Pagos, mapPago(p))
	}
	return resp
}

func (s *mantenimientoService) Crear(ctx context.Context, req dto.CrearMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	maquinaID, err := parseUUID("maquina_id", req.MaquinaID)
	if err != nil {
		return nil, err
	}
	solicitudID, err := parseUUID("solicitud_id", req.SolicitudID)
	if err != nil {
		return nil, err
	}

	if ok, err := s.maquinaRepo.Existe(ctx, maquinaID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.ValidationField("maquina_id", "la maquina no existe")
	}
	if _, err := s.solicitudRepo.ObtenerPorID(ctx, solicitudID); err != nil {
		if noEncontrado(err) {
			return nil, apierror.ValidationField("solicitud_id", "la solicitud no existe")
		}
		return nil, err
	}

	if existing, err := s.repo.ObtenerPorCodigo(ctx, req.Codigo); err != nil && !noEncontrado(err) {
		return nil, err
	} else if existing != nil {
		return nil, apierror.ValidationField("codigo", "ya existe un mantenimiento con ese codigo")
	}

	if req.Costo.IsNegative() {
		return nil, apierror.ValidationField("costo", "el costo no puede ser negativo")
	}

	fechaEntrega, err := time.Parse(formatoFecha, req.FechaEntrega)
	if err != nil {
		return nil, apierror.ValidationField("fecha_entrega", "formato de fecha invalido")
	}
	// fechaEntrega parses to UTC midnight of the submitted calendar date, so
	// compare against the same representation of the server's wall-clock date.
	anio, mes, dia := time.Now().Date()
	hoy := time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
	if fechaEntrega.Before(hoy) {
		return nil, apierror.ValidationField("fecha_entrega", "la fecha de entrega debe ser hoy o posterior")
	}

	m := &model.Mantenimiento{
		Codigo:              req.Codigo,
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Costo:               req.Costo,
		DuracionEstimada:    req.DuracionEstimada,
		ManualProcedimiento: req.ManualProcedimiento,
		FechaEntrega:        fechaEntrega,
		MaquinaID:           maquinaID,
		SolicitudID:         solicitudID,
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return nil, duplicado(err, "codigo", "ya existe un mantenimiento con ese codigo")
	}
	creado, err := s.repo.ObtenerPorID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	resp := mapMantenimiento(*creado)
	return &resp, nil
}

func (s *mantenimientoService) Listar(ctx context.Context) ([]dto.MantenimientoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MantenimientoResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMantenimiento(m))
	}
	return resp, nil
}

func (s *mantenimientoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.MantenimientoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("mantenimiento no encontrado")
		}
		return nil, err
	}
	resp := mapMantenimiento(*m)
	return &resp, nil
}

func (s *mantenimientoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("mantenimiento no encontrado")
		}
		return nil, err
	}

	if req.Codigo != nil && *req.Codigo != m.Codigo {
		existing, err := s.repo.ObtenerPorCodigo(ctx, *req.Codigo)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("codigo", "ya existe un mantenimiento con ese codigo")
		}
		m.Codigo = *req.Codigo
	}
	if req.MaquinaID != nil {
		maquinaID, err := parseUUID("maquina_id", *req.MaquinaID)
		if err != nil {
			return nil, err
		}
		if ok, err := s.maquinaRepo.Existe(ctx, maquinaID); err != nil {
			return nil, err
		} else if !ok {
			return nil, apierror.ValidationField("maquina_id", "la maquina no existe")
		}
		m.MaquinaID = maquinaID
	}
	if req.SolicitudID != nil {
		solicitudID, err := parseUUID("solicitud_id", *req.SolicitudID)
		if err != nil {
			return nil, err
		}
		if _, err := s.solicitudRepo.ObtenerPorID(ctx, solicitudID); err != nil {
			if noEncontrado(err) {
				return nil, apierror.ValidationField("solicitud_id", "la solicitud no existe")
			}
			return nil, err
		}
		m.SolicitudID = solicitudID
	}
	if req.Costo != nil {
		if req.Costo.IsNegative() {
			return nil, apierror.ValidationField("costo", "el costo no puede ser negativo")
		}
		m.Costo = *req.Costo
	}
	if req.FechaEntrega != nil {
		fecha, err := time.Parse(formatoFecha, *req.FechaEntrega)
		if err != nil {
			return nil, apierror.ValidationField("fecha_entrega", "formato de fecha invalido")
		}
		m.FechaEntrega = fecha
	}
	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		m.Descripcion = *req.Descripcion
	}
	if req.DuracionEstimada != nil {
		m.DuracionEstimada = *req.DuracionEstimada
	}
	if req.ManualProcedimiento != nil {
		m.ManualProcedimiento = req.ManualProcedimiento
	}

	if err := s.repo.Actualizar(ctx, m); err != nil {
		return nil, duplicado(err, "codigo", "ya existe un mantenimiento con ese codigo")
	}
	resp := mapMantenimiento(*m)
	return &resp, nil
}

// Eliminar removes a work order unless payments reference it; deletion with
// registered payments is blocked and both rows remain intact.
func (s *mantenimientoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("mantenimiento no encontrado")
		}
		return err
	}
	pagos, err := s.repo.ContarPagos(ctx, id)
	if err != nil {
		return err
	}
	if pagos > 0 {
		return apierror.Conflict("no se puede eliminar un mantenimiento con pagos registrados")
	}
	return s.repo.Eliminar(ctx, id)
}

func (s *mantenimientoService) Estadisticas(ctx context.Context) (*dto.EstadisticasMantenimientosResponse, error) {
	est, err := s.repo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasMantenimientosResponse{
		Total:         est.Total,
		CostoTotal:    est.CostoTotal,
		CostoPromedio: est.CostoPromedio,
		CostoMinimo:   est.CostoMinimo,
		CostoMaximo:   est.CostoMaximo,
	}, nil
}

func (s *mantenimientoService) Buscar(ctx context.Context, q string) ([]dto.MantenimientoResponse, error) {
	list, err := s.repo.Buscar(ctx, q)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MantenimientoResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMantenimiento(m))
	}
	return resp, nil
}

func (s *mantenimientoService) PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]dto.MantenimientoResponse, error) {
	list, err := s.repo.PorRangoFechas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MantenimientoResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMantenimiento(m))
	}
	return resp, nil
}

func (s *mantenimientoService) PorCostoMinimo(ctx context.Context, min decimal.Decimal) ([]dto.MantenimientoResponse, error) {
	list, err := s.repo.PorCostoMinimo(ctx, min)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MantenimientoResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMantenimiento(m))
	}
	return resp, nil
}
