package service

import (
	"context"
	"testing"
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMantenimientoRepo struct {
	mantenimientos map[uuid.UUID]*model.Mantenimiento
	pagosPorOrden  map[uuid.UUID]int64
}

func newStubMantenimientoRepo() *stubMantenimientoRepo {
	return &stubMantenimientoRepo{
		mantenimientos: make(map[uuid.UUID]*model.Mantenimiento),
		pagosPorOrden:  make(map[uuid.UUID]int64),
	}
}

func (r *stubMantenimientoRepo) Crear(_ context.Context, m *model.Mantenimiento) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.mantenimientos[m.ID] = m
	return nil
}

func (r *stubMantenimientoRepo) Listar(_ context.Context) ([]model.Mantenimiento, error) {
	list := make([]model.Mantenimiento, 0, len(r.mantenimientos))
	for _, m := range r.mantenimientos {
		list = append(list, *m)
	}
	return list, nil
}

func (r *stubMantenimientoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Mantenimiento, error) {
	m, ok := r.mantenimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMantenimientoRepo) ObtenerPorCodigo(_ context.Context, codigo string) (*model.Mantenimiento, error) {
	for _, m := range r.mantenimientos {
		if m.Codigo == codigo {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMantenimientoRepo) Actualizar(_ context.Context, m *model.Mantenimiento) error {
	r.mantenimientos[m.ID] = m
	return nil
}

func (r *stubMantenimientoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.mantenimientos, id)
	return nil
}

func (r *stubMantenimientoRepo) ContarPagos(_ context.Context, id uuid.UUID) (int64, error) {
	return r.pagosPorOrden[id], nil
}

func (r *stubMantenimientoRepo) Estadisticas(_ context.Context) (*repository.EstadisticasMantenimientos, error) {
	est := &repository.EstadisticasMantenimientos{}
	for _, m := range r.mantenimientos {
		if est.Total == 0 {
			est.CostoMinimo = m.Costo
			est.CostoMaximo = m.Costo
		}
		est.Total++
		est.CostoTotal = est.CostoTotal.Add(m.Costo)
		if m.Costo.LessThan(est.CostoMinimo) {
			est.CostoMinimo = m.Costo
		}
		if m.Costo.GreaterThan(est.CostoMaximo) {
			est.CostoMaximo = m.Costo
		}
	}
	if est.Total > 0 {
		est.CostoPromedio = est.CostoTotal.Div(decimal.NewFromInt(est.Total)).Round(2)
	}
	return est, nil
}

func (r *stubMantenimientoRepo) Buscar(_ context.Context, _ string) ([]model.Mantenimiento, error) {
	return nil, nil
}

func (r *stubMantenimientoRepo) PorRangoFechas(_ context.Context, desde, hasta time.Time) ([]model.Mantenimiento, error) {
	var list []model.Mantenimiento
	for _, m := range r.mantenimientos {
		if !m.FechaEntrega.Before(desde) && !m.FechaEntrega.After(hasta) {
			list = append(list, *m)
		}
	}
	return list, nil
}

func (r *stubMantenimientoRepo) PorCostoMinimo(_ context.Context, min decimal.Decimal) ([]model.Mantenimiento, error) {
	var list []model.Mantenimiento
	for _, m := range r.mantenimientos {
		if m.Costo.GreaterThanOrEqual(min) {
			list = append(list, *m)
		}
	}
	return list, nil
}

var _ repository.MantenimientoRepository = (*stubMantenimientoRepo)(nil)

type mantenimientoFixture struct {
	svc         MantenimientoService
	repo        *stubMantenimientoRepo
	maquinas    *stubMaquinaRepo
	solicitudes *stubSolicitudRepo

	maquina   *model.Maquina
	solicitud *model.Solicitud
}

func newMantenimientoFixture() *mantenimientoFixture {
	f := &mantenimientoFixture{
		repo:        newStubMantenimientoRepo(),
		maquinas:    newStubMaquinaRepo(),
		solicitudes: newStubSolicitudRepo(),
	}
	f.svc = NewMantenimientoService(f.repo, f.maquinas, f.solicitudes)
	f.maquina = f.maquinas.agregar("Excavadora")
	f.solicitud = &model.Solicitud{
		UsuarioID:      uuid.New(),
		EmpresaID:      uuid.New(),
		FechaSolicitud: time.Now(),
		FechaUso:       time.Now().AddDate(0, 0, 7),
		HoraInicio:     "08:00",
		HoraFin:        "17:00",
		Proyecto:       "Via al Llano",
		Ubicacion:      "Km 18",
		Estado:         model.SolicitudAprobada,
	}
	f.solicitudes.CrearConAsignaciones(context.Background(), f.solicitud, nil)
	return f
}

func (f *mantenimientoFixture) crearRequest(codigo string) dto.CrearMantenimientoRequest {
	return dto.CrearMantenimientoRequest{
		Codigo:           codigo,
		Nombre:           "Cambio de aceite hidraulico",
		Descripcion:      "Drenaje y reemplazo del aceite del sistema hidraulico",
		Costo:            decimal.NewFromInt(850000),
		DuracionEstimada: 8,
		FechaEntrega:     time.Now().AddDate(0, 0, 10).Format(formatoFecha),
		MaquinaID:        f.maquina.ID.String(),
		SolicitudID:      f.solicitud.ID.String(),
	}
}

func TestMantenimientoCrear(t *testing.T) {
	f := newMantenimientoFixture()

	resp, err := f.svc.Crear(context.Background(), f.crearRequest("MANT-001"))
	require.NoError(t, err)

	assert.Equal(t, "MANT-001", resp.Codigo)
	assert.True(t, resp.Costo.Equal(decimal.NewFromInt(850000)))
}

func TestMantenimientoCrearCodigoDuplicado(t *testing.T) {
	f := newMantenimientoFixture()

	_, err := f.svc.Crear(context.Background(), f.crearRequest("MANT-001"))
	require.NoError(t, err)

	_, err = f.svc.Crear(context.Background(), f.crearRequest("MANT-001"))

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "codigo")
}

func TestMantenimientoCrearFechaPasada(t *testing.T) {
	f := newMantenimientoFixture()
	req := f.crearRequest("MANT-001")
	req.FechaEntrega = time.Now().AddDate(0, 0, -1).Format(formatoFecha)

	_, err := f.svc.Crear(context.Background(), req)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "fecha_entrega")
}

func TestMantenimientoCrearFechaHoy(t *testing.T) {
	f := newMantenimientoFixture()
	req := f.crearRequest("MANT-001")
	// Today's wall-clock date is valid at any hour, in any server timezone
	req.FechaEntrega = time.Now().Format(formatoFecha)

	_, err := f.svc.Crear(context.Background(), req)

	assert.NoError(t, err)
}

func TestMantenimientoCrearMaquinaInexistente(t *testing.T) {
	f := newMantenimientoFixture()
	req := f.crearRequest("MANT-001")
	req.MaquinaID = uuid.NewString()

	_, err := f.svc.Crear(context.Background(), req)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "maquina_id")
}

func TestMantenimientoCrearSolicitudInexistente(t *testing.T) {
	f := newMantenimientoFixture()
	req := f.crearRequest("MANT-001")
	req.SolicitudID = uuid.NewString()

	_, err := f.svc.Crear(context.Background(), req)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "solicitud_id")
}

func TestMantenimientoEliminarConPagos(t *testing.T) {
	f := newMantenimientoFixture()

	creado, err := f.svc.Crear(context.Background(), f.crearRequest("MANT-001"))
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)
	f.repo.pagosPorOrden[id] = 2

	err = f.svc.Eliminar(context.Background(), id)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	// Both the order and its payment count survive the rejected delete
	_, existe := f.repo.mantenimientos[id]
	assert.True(t, existe)
}

func TestMantenimientoEliminarSinPagos(t *testing.T) {
	f := newMantenimientoFixture()

	creado, err := f.svc.Crear(context.Background(), f.crearRequest("MANT-001"))
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, f.svc.Eliminar(context.Background(), id))
	_, existe := f.repo.mantenimientos[id]
	assert.False(t, existe)
}

func TestMantenimientoActualizarCostoNegativo(t *testing.T) {
	f := newMantenimientoFixture()

	creado, err := f.svc.Crear(context.Background(), f.crearRequest("MANT-001"))
	require.NoError(t, err)

	costo := decimal.NewFromInt(-1)
	_, err = f.svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), dto.ActualizarMantenimientoRequest{
		Costo: &costo,
	})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "costo")
}

func TestMantenimientoEstadisticas(t *testing.T) {
	f := newMantenimientoFixture()

	barato := f.crearRequest("MANT-001")
	barato.Costo = decimal.NewFromInt(100000)
	caro := f.crearRequest("MANT-002")
	caro.Costo = decimal.NewFromInt(300000)

	_, err := f.svc.Crear(context.Background(), barato)
	require.NoError(t, err)
	_, err = f.svc.Crear(context.Background(), caro)
	require.NoError(t, err)

	est, err := f.svc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), est.Total)
	assert.True(t, est.CostoTotal.Equal(decimal.NewFromInt(400000)))
	assert.True(t, est.CostoPromedio.Equal(decimal.NewFromInt(200000)))
	assert.True(t, est.CostoMinimo.Equal(decimal.NewFromInt(100000)))
	assert.True(t, est.CostoMaximo.Equal(decimal.NewFromInt(300000)))
}
