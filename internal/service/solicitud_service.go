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

// SolicitudService defines business operations for machinery use requests and
// their machine allocations.
type SolicitudService interface {
	Crear(ctx context.Context, p Principal, req dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error)
	Listar(ctx context.Context, p Principal) ([]dto.SolicitudResponse, error)
	Obtener(ctx context.Context, p Principal, id uuid.UUID) (*dto.SolicitudResponse, error)
	Actualizar(ctx context.Context, p Principal, id uuid.UUID, req dto.ActualizarSolicitudRequest) (*dto.SolicitudResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.SolicitudResponse, error)
	Eliminar(ctx context.Context, p Principal, id uuid.UUID) error
	TotalPorEmpresa(ctx context.Context, nombreEmpresa string) (*dto.TotalPorEmpresaResponse, error)
	PorEmpleadoDocumento(ctx context.Context, documento string) ([]dto.SolicitudResponse, error)
	ReporteMensual(ctx context.Context, anio, mes int) (*dto.ReporteMensualResponse, error)
}

type solicitudService struct {
	repo         repository.SolicitudRepository
	empresaRepo  repository.EmpresaRepository
	maquinaRepo  repository.MaquinaRepository
	usuarioRepo  repository.UsuarioRepository
	empleadoRepo repository.EmpleadoRepository
	notificador  Notificador
}

func NewSolicitudService(
	repo repository.SolicitudRepository,
	empresaRepo repository.EmpresaRepository,
	maquinaRepo repository.MaquinaRepository,
	usuarioRepo repository.UsuarioRepository,
	empleadoRepo repository.EmpleadoRepository,
	notificador Notificador,
) SolicitudService {
	return &solicitudService{
		repo:         repo,
		empresaRepo:  empresaRepo,
		maquinaRepo:  maquinaRepo,
		usuarioRepo:  usuarioRepo,
		empleadoRepo: empleadoRepo,
		notificador:  notificador,
	}
}

func mapSolicitud(s model.Solicitud) dto.SolicitudResponse {
	resp := dto.SolicitudResponse{
		ID:             s.ID.String(),
		UsuarioID:      s.UsuarioID.String(),
		EmpresaID:      s.EmpresaID.String(),
		FechaSolicitud: s.FechaSolicitud.Format(time.RFC3339),
		FechaUso:       s.FechaUso.Format(formatoFecha),
		HoraInicio:     s.HoraInicio,
		HoraFin:        s.HoraFin,
		Proyecto:       s.Proyecto,
		Ubicacion:      s.Ubicacion,
		Estado:         s.Estado,
		Asignaciones:   make([]dto.AsignacionMaquinaResponse, 0, len(s.Asignaciones)),
	}
	if s.Empresa != nil {
		e := mapEmpresa(*s.Empresa)
		resp.Empresa = &e
	}
	for _, a := range s.Asignaciones {
		ar := dto.AsignacionMaquinaResponse{
			MaquinaID: a.MaquinaID.String(),
			Cantidad:  a.Cantidad,
		}
		if a.Maquina != nil {
			m := mapMaquina(*a.Maquina)
			ar.Maquina = &m
		}
		resp.Asignaciones = append(resp.Asignaciones, ar)
	}
	return resp
}

// validarHorario enforces that the end of the use window is not before its
// start. Both values arrive pre-validated as "HH:MM".
func validarHorario(inicio, fin string) error {
	hi, err := time.Parse(formatoHora, inicio)
	if err != nil {
		return apierror.ValidationField("hora_inicio", "formato de hora invalido")
	}
	hf, err := time.Parse(formatoHora, fin)
	if err != nil {
		return apierror.ValidationField("hora_fin", "formato de hora invalido")
	}
	if hf.Before(hi) {
		return apierror.ValidationField("hora_fin", "la hora de fin debe ser igual o posterior a la hora de inicio")
	}
	return nil
}

// asignacionesDesdeInput validates the (machine, quantity) pairs and resolves
// them to join rows. Repeating a machine in the same request is rejected.
func (s *solicitudService) asignacionesDesdeInput(ctx context.Context, pares []dto.AsignacionMaquinaInput) ([]model.SolicitudMaquina, error) {
	vistas := make(map[uuid.UUID]struct{}, len(pares))
	asigs := make([]model.SolicitudMaquina, 0, len(pares))
	for _, par := range pares {
		maquinaID, err := parseUUID("maquinas", par.MaquinaID)
		if err != nil {
			return nil, err
		}
		if _, ok := vistas[maquinaID]; ok {
			return nil, apierror.ValidationField("maquinas", "la maquina "+par.MaquinaID+" aparece mas de una vez")
		}
		vistas[maquinaID] = struct{}{}

		ok, err := s.maquinaRepo.Existe(ctx, maquinaID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apierror.ValidationField("maquinas", "la maquina "+par.MaquinaID+" no existe")
		}
		asigs = append(asigs, model.SolicitudMaquina{
			MaquinaID: maquinaID,
			Cantidad:  par.Cantidad,
		})
	}
	return asigs, nil
}

func (s *solicitudService) Crear(ctx context.Context, p Principal, req dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error) {
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
	if err := validarHorario(req.HoraInicio, req.HoraFin); err != nil {
		return nil, err
	}
	fechaUso, err := time.Parse(formatoFecha, req.FechaUso)
	if err != nil {
		return nil, apierror.ValidationField("fecha_uso", "formato de fecha invalido")
	}
	asigs, err := s.asignacionesDesdeInput(ctx, req.Maquinas)
	if err != nil {
		return nil, err
	}

	sol := &model.Solicitud{
		UsuarioID:      p.ID,
		EmpresaID:      empresaID,
		FechaSolicitud: time.Now(),
		FechaUso:       fechaUso,
		HoraInicio:     req.HoraInicio,
		HoraFin:        req.HoraFin,
		Proyecto:       req.Proyecto,
		Ubicacion:      req.Ubicacion,
		Estado:         model.SolicitudPendiente,
	}
	if err := s.repo.CrearConAsignaciones(ctx, sol, asigs); err != nil {
		return nil, err
	}
	creada, err := s.repo.ObtenerPorID(ctx, sol.ID)
	if err != nil {
		return nil, err
	}
	resp := mapSolicitud(*creada)
	return &resp, nil
}

// Listar returns every request for administrators and only the caller's own
// requests for any other role.
func (s *solicitudService) Listar(ctx context.Context, p Principal) ([]dto.SolicitudResponse, error) {
	var (
		list []model.Solicitud
		err  error
	)
	if p.Rol == model.RolAdmin {
		list, err = s.repo.Listar(ctx)
	} else {
		list, err = s.repo.PorUsuario(ctx, p.ID)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SolicitudResponse, 0, len(list))
	for _, sol := range list {
		resp = append(resp, mapSolicitud(sol))
	}
	return resp, nil
}

func (s *solicitudService) Obtener(ctx context.Context, p Principal, id uuid.UUID) (*dto.SolicitudResponse, error) {
	sol, err := s.obtenerPropia(ctx, p, id)
	if err != nil {
		return nil, err
	}
	resp := mapSolicitud(*sol)
	return &resp, nil
}

func (s *solicitudService) obtenerPropia(ctx context.Context, p Principal, id uuid.UUID) (*model.Solicitud, error) {
	sol, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("solicitud no encontrada")
		}
		return nil, err
	}
	if p.Rol != model.RolAdmin && sol.UsuarioID != p.ID {
		return nil, apierror.Forbidden("no tiene acceso a esta solicitud")
	}
	return sol, nil
}

func (s *solicitudService) Actualizar(ctx context.Context, p Principal, id uuid.UUID, req dto.ActualizarSolicitudRequest) (*dto.SolicitudResponse, error) {
	sol, err := s.obtenerPropia(ctx, p, id)
	if err != nil {
		return nil, err
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
		sol.EmpresaID = empresaID
	}
	if req.FechaUso != nil {
		fecha, err := time.Parse(formatoFecha, *req.FechaUso)
		if err != nil {
			return nil, apierror.ValidationField("fecha_uso", "formato de fecha invalido")
		}
		sol.FechaUso = fecha
	}
	if req.HoraInicio != nil {
		sol.HoraInicio = *req.HoraInicio
	}
	if req.HoraFin != nil {
		sol.HoraFin = *req.HoraFin
	}
	if err := validarHorario(sol.HoraInicio, sol.HoraFin); err != nil {
		return nil, err
	}
	if req.Proyecto != nil {
		sol.Proyecto = *req.Proyecto
	}
	if req.Ubicacion != nil {
		sol.Ubicacion = *req.Ubicacion
	}
	if req.Estado != nil {
		sol.Estado = *req.Estado
	}

	var asigs []model.SolicitudMaquina
	reemplazar := req.Maquinas != nil
	if reemplazar {
		asigs, err = s.asignacionesDesdeInput(ctx, req.Maquinas)
		if err != nil {
			return nil, err
		}
	}
	if err := s.repo.ActualizarConAsignaciones(ctx, sol, asigs, reemplazar); err != nil {
		return nil, err
	}
	actualizada, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapSolicitud(*actualizada)
	return &resp, nil
}

// CambiarEstado sets the request state. Any transition between valid states is
// accepted, and the requesting user is notified of the new state by email.
func (s *solicitudService) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.SolicitudResponse, error) {
	if !model.EstadoSolicitudValido(estado) {
		return nil, apierror.ValidationField("estado", "estado de solicitud invalido")
	}
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("solicitud no encontrada")
		}
		return nil, err
	}
	if err := s.repo.CambiarEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	sol, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notificarEstado(ctx, sol)
	resp := mapSolicitud(*sol)
	return &resp, nil
}

func (s *solicitudService) Eliminar(ctx context.Context, p Principal, id uuid.UUID) error {
	if _, err := s.obtenerPropia(ctx, p, id); err != nil {
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

func (s *solicitudService) TotalPorEmpresa(ctx context.Context, nombreEmpresa string) (*dto.TotalPorEmpresaResponse, error) {
	total, err := s.repo.TotalCantidadPorEmpresa(ctx, nombreEmpresa)
	if err != nil {
		return nil, err
	}
	return &dto.TotalPorEmpresaResponse{
		NombreEmpresa: nombreEmpresa,
		TotalMaquinas: total,
	}, nil
}

// PorEmpleadoDocumento lists the requests submitted by the user account whose
// email matches the employee's. An employee without a linked account has no
// requests.
func (s *solicitudService) PorEmpleadoDocumento(ctx context.Context, documento string) ([]dto.SolicitudResponse, error) {
	emp, err := s.empleadoRepo.ObtenerPorDocumento(ctx, documento)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("empleado no encontrado")
		}
		return nil, err
	}
	if emp.Email == nil {
		return []dto.SolicitudResponse{}, nil
	}
	usuario, err := s.usuarioRepo.ObtenerPorEmail(ctx, *emp.Email)
	if err != nil {
		if noEncontrado(err) {
			return []dto.SolicitudResponse{}, nil
		}
		return nil, err
	}
	list, err := s.repo.PorUsuario(ctx, usuario.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SolicitudResponse, 0, len(list))
	for _, sol := range list {
		resp = append(resp, mapSolicitud(sol))
	}
	return resp, nil
}

func (s *solicitudService) ReporteMensual(ctx context.Context, anio, mes int) (*dto.ReporteMensualResponse, error) {
	if mes < 1 || mes > 12 {
		return nil, apierror.ValidationField("mes", "el mes debe estar entre 1 y 12")
	}
	list, err := s.repo.PorMes(ctx, anio, mes)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReporteMensualResponse{
		Anio:        anio,
		Mes:         mes,
		Total:       len(list),
		Solicitudes: make([]dto.SolicitudResponse, 0, len(list)),
	}
	for _, sol := range list {
		resp.Solicitudes = append(resp.Solicitudes, mapSolicitud(sol))
	}
	return resp, nil
}

func (s *solicitudService) notificarEstado(ctx context.Context, sol *model.Solicitud) {
	if s.notificador == nil {
		return
	}
	usuario, err := s.usuarioRepo.ObtenerPorID(ctx, sol.UsuarioID)
	if err != nil {
		log.Warn().Str("solicitud_id", sol.ID.String()).Msg("cambio de estado sin destinatario de notificacion")
		return
	}
	n := Notificacion{
		Destinatario: usuario.Email,
		Asunto:       fmt.Sprintf("Solicitud %s %s", sol.ID, sol.Estado),
		Cuerpo: fmt.Sprintf(
			"Su solicitud para el proyecto %q ahora se encuentra en estado %s.",
			sol.Proyecto, sol.Estado,
		),
	}
	if err := s.notificador.Encolar(ctx, n); err != nil {
		log.Error().Err(err).Str("solicitud_id", sol.ID.String()).Msg("no se pudo encolar la notificacion de solicitud")
	}
}
