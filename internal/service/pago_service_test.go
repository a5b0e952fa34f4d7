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

type stubPagoRepo struct {
	pagos map[uuid.UUID]*model.Pago
}

func newStubPagoRepo() *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uuid.UUID]*model.Pago)}
}

func (r *stubPagoRepo) Crear(_ context.Context, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos[p.ID] = p
	return nil
}

func (r *stubPagoRepo) Listar(_ context.Context) ([]model.Pago, error) {
	list := make([]model.Pago, 0, len(r.pagos))
	for _, p := range r.pagos {
		list = append(list, *p)
	}
	return list, nil
}

func (r *stubPagoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPagoRepo) ObtenerPorCodigo(_ context.Context, codigo string) (*model.Pago, error) {
	for _, p := range r.pagos {
		if p.CodigoPago == codigo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPagoRepo) Actualizar(_ context.Context, p *model.Pago) error {
	r.pagos[p.ID] = p
	return nil
}

func (r *stubPagoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.pagos, id)
	return nil
}

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

type pagoFixture struct {
	svc         PagoService
	repo        *stubPagoRepo
	ordenes     *stubMantenimientoRepo
	empresas    *stubEmpresaRepo
	notificador *stubNotificador

	orden   *model.Mantenimiento
	empresa *model.Empresa
}

func newPagoFixture() *pagoFixture {
	f := &pagoFixture{
		repo:        newStubPagoRepo(),
		ordenes:     newStubMantenimientoRepo(),
		empresas:    newStubEmpresaRepo(),
		notificador: &stubNotificador{},
	}
	f.svc = NewPagoService(f.repo, f.ordenes, f.empresas, f.notificador)

	f.empresa = f.empresas.agregar("900123456", "Construcciones Andinas")
	f.empresa.Representante = &model.Representante{
		ID:        uuid.New(),
		Nombre:    "Maria Lopez",
		Cedula:    "52123456",
		Telefono:  "3109876543",
		Email:     "maria.lopez@andinas.com",
		EmpresaID: f.empresa.ID,
	}

	f.orden = &model.Mantenimiento{
		Codigo:           "MANT-001",
		Nombre:           "Cambio de aceite hidraulico",
		Descripcion:      "Drenaje y reemplazo",
		Costo:            decimal.NewFromInt(850000),
		DuracionEstimada: 8,
		FechaEntrega:     time.Now().AddDate(0, 0, 10),
		MaquinaID:        uuid.New(),
		SolicitudID:      uuid.New(),
	}
	f.ordenes.Crear(context.Background(), f.orden)
	return f
}

func (f *pagoFixture) crearRequest(codigo string) dto.CrearPagoRequest {
	return dto.CrearPagoRequest{
		CodigoPago:      codigo,
		FechaPago:       "2026-08-20",
		Monto:           decimal.NewFromInt(850000),
		Metodo:          "transferencia",
		MantenimientoID: f.orden.ID.String(),
		EmpresaID:       f.empresa.ID.String(),
	}
}

func TestPagoCrearEstadoPorDefecto(t *testing.T) {
	f := newPagoFixture()

	resp, err := f.svc.Crear(context.Background(), f.crearRequest("PAG-001"))
	require.NoError(t, err)

	assert.Equal(t, model.PagoPendiente, resp.Estado)
	assert.Empty(t, f.notificador.enviadas)
}

func TestPagoCrearCompletadoNotifica(t *testing.T) {
	f := newPagoFixture()
	req := f.crearRequest("PAG-001")
	req.Estado = model.PagoCompletado

	resp, err := f.svc.Crear(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, model.PagoCompletado, resp.Estado)
	require.Len(t, f.notificador.enviadas, 1)
	assert.Equal(t, "maria.lopez@andinas.com", f.notificador.enviadas[0].Destinatario)
	assert.Contains(t, f.notificador.enviadas[0].Asunto, "PAG-001")
}

func TestPagoCrearCodigoDuplicado(t *testing.T) {
	f := newPagoFixture()

	_, err := f.svc.Crear(context.Background(), f.crearRequest("PAG-001"))
	require.NoError(t, err)

	_, err = f.svc.Crear(context.Background(), f.crearRequest("PAG-001"))

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "codigo_pago")
}

func TestPagoCrearMantenimientoInexistente(t *testing.T) {
	f := newPagoFixture()
	req := f.crearRequest("PAG-001")
	req.MantenimientoID = uuid.NewString()

	_, err := f.svc.Crear(context.Background(), req)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "mantenimiento_id")
}

func TestPagoActualizarACompletadoNotifica(t *testing.T) {
	f := newPagoFixture()

	creado, err := f.svc.Crear(context.Background(), f.crearRequest("PAG-001"))
	require.NoError(t, err)
	require.Empty(t, f.notificador.enviadas)

	estado := model.PagoCompletado
	resp, err := f.svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), dto.ActualizarPagoRequest{
		Estado: &estado,
	})
	require.NoError(t, err)

	assert.Equal(t, model.PagoCompletado, resp.Estado)
	assert.Len(t, f.notificador.enviadas, 1)
}

func TestPagoActualizarCompletadoSinTransicionNoNotifica(t *testing.T) {
	f := newPagoFixture()
	req := f.crearRequest("PAG-001")
	req.Estado = model.PagoCompletado

	creado, err := f.svc.Crear(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, f.notificador.enviadas, 1)

	notas := "pago verificado"
	_, err = f.svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), dto.ActualizarPagoRequest{
		Notas: &notas,
	})
	require.NoError(t, err)

	// Still completed, no state change, so no second notification
	assert.Len(t, f.notificador.enviadas, 1)
}

func TestPagoCompletadoSinRepresentanteNoFalla(t *testing.T) {
	f := newPagoFixture()
	f.empresa.Representante = nil
	req := f.crearRequest("PAG-001")
	req.Estado = model.PagoCompletado

	_, err := f.svc.Crear(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, f.notificador.enviadas)
}

func TestPagoMontoNegativo(t *testing.T) {
	f := newPagoFixture()
	req := f.crearRequest("PAG-001")
	req.Monto = decimal.NewFromInt(-500)

	_, err := f.svc.Crear(context.Background(), req)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "monto")
}

func TestPagoObtenerInexistente(t *testing.T) {
	f := newPagoFixture()

	_, err := f.svc.Obtener(context.Background(), uuid.New())

	apiErr := asAPIError(t, err)
	assert.Equal(t, 404, apiErr.Status)
}
