package service

import (
	"context"
	"testing"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubEmpresaRepo struct {
	empresas     map[uuid.UUID]*model.Empresa
	solicitudes  map[uuid.UUID]int64 // empresa → request count, feeds the rankings
	ordenCreadas []uuid.UUID
}

func newStubEmpresaRepo() *stubEmpresaRepo {
	return &stubEmpresaRepo{
		empresas:    make(map[uuid.UUID]*model.Empresa),
		solicitudes: make(map[uuid.UUID]int64),
	}
}

func (r *stubEmpresaRepo) Crear(_ context.Context, e *model.Empresa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empresas[e.ID] = e
	r.ordenCreadas = append(r.ordenCreadas, e.ID)
	return nil
}

func (r *stubEmpresaRepo) Listar(_ context.Context) ([]model.Empresa, error) {
	list := make([]model.Empresa, 0, len(r.empresas))
	for _, e := range r.empresas {
		list = append(list, *e)
	}
	return list, nil
}

func (r *stubEmpresaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpresaRepo) ObtenerPorNIT(_ context.Context, nit string) (*model.Empresa, error) {
	for _, e := range r.empresas {
		if e.NIT == nit {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmpresaRepo) Actualizar(_ context.Context, e *model.Empresa) error {
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.empresas, id)
	return nil
}

func (r *stubEmpresaRepo) ConMasSolicitudes(_ context.Context) (*model.Empresa, int64, error) {
	var ganadora *model.Empresa
	var max int64
	// Creation order breaks ties, matching the SQL ordering
	for _, id := range r.ordenCreadas {
		if n := r.solicitudes[id]; n > max {
			ganadora = r.empresas[id]
			max = n
		}
	}
	if ganadora == nil {
		return nil, 0, gorm.ErrRecordNotFound
	}
	return ganadora, max, nil
}

func (r *stubEmpresaRepo) SinSolicitudes(_ context.Context) ([]model.Empresa, error) {
	var list []model.Empresa
	for _, id := range r.ordenCreadas {
		if r.solicitudes[id] == 0 {
			list = append(list, *r.empresas[id])
		}
	}
	return list, nil
}

var _ repository.EmpresaRepository = (*stubEmpresaRepo)(nil)

func (r *stubEmpresaRepo) agregar(nit, nombre string) *model.Empresa {
	e := &model.Empresa{
		ID:            uuid.New(),
		NIT:           nit,
		NombreEmpresa: nombre,
		Direccion:     "Calle 1 # 2-3",
		Ciudad:        "Bogota",
		Telefono:      "3001234567",
	}
	r.empresas[e.ID] = e
	r.ordenCreadas = append(r.ordenCreadas, e.ID)
	return e
}

func TestEmpresaCrearNITDuplicado(t *testing.T) {
	repo := newStubEmpresaRepo()
	repo.agregar("900123456", "Construcciones Andinas")
	svc := NewEmpresaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearEmpresaRequest{
		NIT:           "900123456",
		NombreEmpresa: "Otra Empresa",
		Direccion:     "Carrera 5",
		Ciudad:        "Medellin",
		Telefono:      "3017654321",
	})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "nit")
}

func TestEmpresaActualizarNITOcupado(t *testing.T) {
	repo := newStubEmpresaRepo()
	repo.agregar("900111111", "Empresa A")
	b := repo.agregar("900222222", "Empresa B")
	svc := NewEmpresaService(repo)

	nit := "900111111"
	_, err := svc.Actualizar(context.Background(), b.ID, dto.ActualizarEmpresaRequest{NIT: &nit})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "nit")
}

func TestEmpresaObtenerInexistente(t *testing.T) {
	svc := NewEmpresaService(newStubEmpresaRepo())

	_, err := svc.Obtener(context.Background(), uuid.New())

	apiErr := asAPIError(t, err)
	assert.Equal(t, 404, apiErr.Status)
}

func TestEmpresaConMasSolicitudes(t *testing.T) {
	repo := newStubEmpresaRepo()
	a := repo.agregar("900111111", "Empresa A")
	b := repo.agregar("900222222", "Empresa B")
	repo.solicitudes[a.ID] = 2
	repo.solicitudes[b.ID] = 5
	svc := NewEmpresaService(repo)

	resp, err := svc.ConMasSolicitudes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, b.ID.String(), resp.Empresa.ID)
	assert.Equal(t, int64(5), resp.TotalSolicitudes)
}

func TestEmpresaConMasSolicitudesSinDatos(t *testing.T) {
	repo := newStubEmpresaRepo()
	repo.agregar("900111111", "Empresa A")
	svc := NewEmpresaService(repo)

	_, err := svc.ConMasSolicitudes(context.Background())

	apiErr := asAPIError(t, err)
	assert.Equal(t, 404, apiErr.Status)
}

func TestEmpresaSinSolicitudes(t *testing.T) {
	repo := newStubEmpresaRepo()
	a := repo.agregar("900111111", "Empresa A")
	b := repo.agregar("900222222", "Empresa B")
	repo.solicitudes[b.ID] = 3
	svc := NewEmpresaService(repo)

	resp, err := svc.SinSolicitudes(context.Background())
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, a.ID.String(), resp[0].ID)
}
