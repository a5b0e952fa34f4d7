package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PagoService defines business operations for payments against work orders.
type PagoService interface {
	Crear(ctx context.Context, req dto.CrearPagoRequest) (*dto.PagoResponse, error)
	Listar(ctx context.Context) ([]dto.PagoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPagoRequest) (*dto.PagoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type pagoService struct {
	repo              repository.PagoRepository
	mantenimientoRepo repository.MantenimientoRepository
	empresaRepo       repository.EmpresaRepository
	notificador       Notificador
}

func NewPagoService(
	repo repository.PagoRepository,
	mantenimientoRepo repository.MantenimientoRepository,
	empresaRepo repository.EmpresaRepository,
	notificador Notificador,
) PagoService {
	return &pagoService{
		repo:              repo,
		mantenimientoRepo: mantenimientoRepo,
		empresaRepo:       empresaRepo,
		notificador:       notificador,
	}
}

func mapPago(p model.Pago) dto.PagoResponse {
	resp := dto.PagoResponse{
		ID:         p.ID.String(),
		CodigoPago: p.CodigoPago,
		FechaPago:  p.FechaPago.Format(formatoFecha),
		Monto:      p.Monto,
		Metodo:     p.Metodo,
		Referencia: p.Referencia,
		Estado:     p.Estado,
		Notas:      p.Notas,
	}
	if p.Empresa != nil {
		e := mapEmpresa(*p.Empresa)
		resp.Empresa = &e
	}
	return resp
}

func (s *pagoService) Crear(ctx context.Context, req dto.CrearPagoRequest) (*dto.PagoResponse, error) {
	mantenimientoID, err := parseUUID("mantenimiento_id", req.MantenimientoID)
	if err != nil {
		return nil, err
	}
	empresaID, err := parseUUID("empresa_id", req.EmpresaID)
	if err != nil {
		return nil, err
	}

	if _, err := s.mantenimientoRepo.ObtenerPorID(ctx, mantenimientoID); err != nil {
		if noEncontrado(err) {
			return nil, apierror.ValidationField("mantenimiento_id", "el mantenimiento no existe")
		}
		return nil, err
	}
	if _, err := s.empresaRepo.ObtenerPorID(ctx, empresaID); err != nil {
		if noEncontrado(err) {
			return nil, apierror.ValidationField("empresa_id", "la empresa no existe")
		}
		return nil, err
	}

	if existing, err := s.repo.ObtenerPorCodigo(ctx, req.CodigoPago); err != nil && !noEncontrado(err) {
		return nil, err
	} else if existing != nil {
		return nil, apierror.ValidationField("codigo_pago", "ya existe un pago con ese codigo")
	}

	if req.Monto.IsNegative() {
		return nil, apierror.ValidationField("monto", "el monto no puede ser negativo")
	}
	fechaPago, err := time.Parse(formatoFecha, req.FechaPago)
	if err != nil {
		return nil, apierror.ValidationField("fecha_pago", "formato de fecha invalido")
	}

	estado := req.Estado
	if estado == "" {
		estado = model.PagoPendiente
	}

	p := &model.Pago{
		CodigoPago:      req.CodigoPago,
		FechaPago:       fechaPago,
		Monto:           req.Monto,
		Metodo:          req.Metodo,
		Referencia:      req.Referencia,
		Estado:          estado,
		Notas:           req.Notas,
		MantenimientoID: mantenimientoID,
		EmpresaID:       empresaID,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, duplicado(err, "codigo_pago", "ya existe un pago con ese codigo")
	}
	if p.Estado == model.PagoCompletado {
		s.notificarCompletado(ctx, p)
	}
	creado, err := s.repo.ObtenerPorID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := mapPago(*creado)
	return &resp, nil
}

func (s *pagoService) Listar(ctx context.Context) ([]dto.PagoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PagoResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, mapPago(p))
	}
	return resp, nil
}

func (s *pagoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("pago no encontrado")
		}
		return nil, err
	}
	resp := mapPago(*p)
	return &resp, nil
}

func (s *pagoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPagoRequest) (*dto.PagoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("pago no encontrado")
		}
		return nil, err
	}
	estadoPrevio := p.Estado

	if req.CodigoPago != nil && *req.CodigoPago != p.CodigoPago {
		existing, err := s.repo.ObtenerPorCodigo(ctx, *req.CodigoPago)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.ValidationField("codigo_pago", "ya existe un pago con ese codigo")
		}
		p.CodigoPago = *req.CodigoPago
	}
	if req.MantenimientoID != nil {
		mantenimientoID, err := parseUUID("mantenimiento_id", *req.MantenimientoID)
		if err != nil {
			return nil, err
		}
		if _, err := s.mantenimientoRepo.ObtenerPorID(ctx, mantenimientoID); err != nil {
			if noEncontrado(err) {
				return nil, apierror.ValidationField("mantenimiento_id", "el mantenimiento no existe")
			}
			return nil, err
		}
		p.MantenimientoID = mantenimientoID
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
		p.EmpresaID = empresaID
	}
	if req.FechaPago != nil {
		fecha, err := time.Parse(formatoFecha, *req.FechaPago)
		if err != nil {
			return nil, apierror.ValidationField("fecha_pago", "formato de fecha invalido")
		}
		p.FechaPago = fecha
	}
	if req.Monto != nil {
		if req.Monto.IsNegative() {
			return nil, apierror.ValidationField("monto", "el monto no puede ser negativo")
		}
		p.Monto = *req.Monto
	}
	if req.Metodo != nil {
		p.Metodo = *req.Metodo
	}
	if req.Referencia != nil {
		p.Referencia = req.Referencia
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if req.Notas != nil {
		p.Notas = req.Notas
	}

	p.Empresa = nil
	p.Mantenimiento = nil
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, duplicado(err, "codigo_pago", "ya existe un pago con ese codigo")
	}
	if p.Estado == model.PagoCompletado && estadoPrevio != model.PagoCompletado {
		s.notificarCompletado(ctx, p)
	}
	actualizado, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPago(*actualizado)
	return &resp, nil
}

func (s *pagoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("pago no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

// notificarCompletado queues a receipt email to the paying company's
// representative. Missing representative or queue failure only logs.
func (s *pagoService) notificarCompletado(ctx context.Context, p *model.Pago) {
	if s.notificador == nil {
		return
	}
	empresa, err := s.empresaRepo.ObtenerPorID(ctx, p.EmpresaID)
	if err != nil || empresa.Representante == nil {
		log.Warn().Str("pago_id", p.ID.String()).Msg("pago completado sin destinatario de notificacion")
		return
	}
	n := Notificacion{
		Destinatario: empresa.Representante.Email,
		Asunto:       fmt.Sprintf("Pago %s completado", p.CodigoPago),
		Cuerpo: fmt.Sprintf(
			"El pago %s de %s por un monto de %s fue registrado como completado.",
			p.CodigoPago, empresa.NombreEmpresa, p.Monto.StringFixed(2),
		),
	}
	if err := s.notificador.Encolar(ctx, n); err != nil {
		log.Error().Err(err).Str("pago_id", p.ID.String()).Msg("no se pudo encolar la notificacion de pago")
	}
}
