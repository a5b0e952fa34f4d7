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

// stubRepresentanteRepo enforces the cedula and email unique constraints on
// writes. With enCarrera set, lookups report not-found until the first write
// fails, modeling a concurrent writer committing between the pre-flight
// checks and the insert.
type stubRepresentanteRepo struct {
	representantes map[uuid.UUID]*model.Representante
	enCarrera      bool
}

func newStubRepresentanteRepo() *stubRepresentanteRepo {
	return &stubRepresentanteRepo{representantes: make(map[uuid.UUID]*model.Representante)}
}

func (r *stubRepresentanteRepo) Crear(_ context.Context, rep *model.Representante) error {
	if otro := r.colision(rep); otro != nil {
		r.enCarrera = false
		return gorm.ErrDuplicatedKey
	}
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	r.representantes[rep.ID] = rep
	return nil
}

func (r *stubRepresentanteRepo) colision(rep *model.Representante) *model.Representante {
	for _, otro := range r.representantes {
		if otro.ID == rep.ID {
			continue
		}
		if otro.Cedula == rep.Cedula || otro.Email == rep.Email {
			return otro
		}
	}
	return nil
}

func (r *stubRepresentanteRepo) Listar(_ context.Context) ([]model.Representante, error) {
	list := make([]model.Representante, 0, len(r.representantes))
	for _, rep := range r.representantes {
		list = append(list, *rep)
	}
	return list, nil
}

func (r *stubRepresentanteRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Representante, error) {
	rep, ok := r.representantes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *rep
	return &copia, nil
}

func (r *stubRepresentanteRepo) ObtenerPorCedula(_ context.Context, cedula string) (*model.Representante, error) {
	if r.enCarrera {
		return nil, gorm.ErrRecordNotFound
	}
	for _, rep := range r.representantes {
		if rep.Cedula == cedula {
			return rep, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepresentanteRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Representante, error) {
	if r.enCarrera {
		return nil, gorm.ErrRecordNotFound
	}
	for _, rep := range r.representantes {
		if rep.Email == email {
			return rep, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepresentanteRepo) Actualizar(_ context.Context, rep *model.Representante) error {
	if otro := r.colision(rep); otro != nil {
		r.enCarrera = false
		return gorm.ErrDuplicatedKey
	}
	copia := *rep
	r.representantes[rep.ID] = &copia
	return nil
}

func (r *stubRepresentanteRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.representantes, id)
	return nil
}

var _ repository.RepresentanteRepository = (*stubRepresentanteRepo)(nil)

func (r *stubRepresentanteRepo) agregar(cedula, email string, empresaID uuid.UUID) *model.Representante {
	rep := &model.Representante{
		ID:        uuid.New(),
		Nombre:    "Maria Lopez",
		Cedula:    cedula,
		Telefono:  "3109876543",
		Email:     email,
		EmpresaID: empresaID,
	}
	r.representantes[rep.ID] = rep
	return rep
}

func newRepresentanteFixture() (RepresentanteService, *stubRepresentanteRepo, *model.Empresa) {
	repo := newStubRepresentanteRepo()
	empresas := newStubEmpresaRepo()
	empresa := empresas.agregar("900123456", "Construcciones Andinas")
	return NewRepresentanteService(repo, empresas), repo, empresa
}

func (f *stubRepresentanteRepo) crearRequest(empresaID uuid.UUID, cedula, email string) dto.CrearRepresentanteRequest {
	return dto.CrearRepresentanteRequest{
		Nombre:    "Carlos Rueda",
		Cedula:    cedula,
		Telefono:  "3001112233",
		Email:     email,
		EmpresaID: empresaID.String(),
	}
}

func TestRepresentanteCrearCedulaDuplicada(t *testing.T) {
	svc, repo, empresa := newRepresentanteFixture()
	repo.agregar("52123456", "maria@andinas.com", empresa.ID)

	_, err := svc.Crear(context.Background(), repo.crearRequest(empresa.ID, "52123456", "otro@andinas.com"))

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "cedula")
}

func TestRepresentanteCrearEmailDuplicado(t *testing.T) {
	svc, repo, empresa := newRepresentanteFixture()
	repo.agregar("52123456", "maria@andinas.com", empresa.ID)

	_, err := svc.Crear(context.Background(), repo.crearRequest(empresa.ID, "79111222", "maria@andinas.com"))

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "email")
}

func TestRepresentanteCarreraEmailReportaEmail(t *testing.T) {
	svc, repo, empresa := newRepresentanteFixture()
	// Committed by a concurrent writer after the pre-flight checks
	repo.agregar("52123456", "maria@andinas.com", empresa.ID)
	repo.enCarrera = true

	_, err := svc.Crear(context.Background(), repo.crearRequest(empresa.ID, "79111222", "maria@andinas.com"))

	apiErr := asAPIError(t, err)
	require.Equal(t, 422, apiErr.Status)
	// The colliding column is email; the error must not be labeled cedula
	assert.Contains(t, apiErr.Fields, "email")
	assert.NotContains(t, apiErr.Fields, "cedula")
}

func TestRepresentanteCarreraCedulaReportaCedula(t *testing.T) {
	svc, repo, empresa := newRepresentanteFixture()
	repo.agregar("52123456", "maria@andinas.com", empresa.ID)
	repo.enCarrera = true

	_, err := svc.Crear(context.Background(), repo.crearRequest(empresa.ID, "52123456", "otro@andinas.com"))

	apiErr := asAPIError(t, err)
	require.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "cedula")
	assert.NotContains(t, apiErr.Fields, "email")
}

func TestRepresentanteActualizarCarreraEmail(t *testing.T) {
	svc, repo, empresa := newRepresentanteFixture()
	mio := repo.agregar("79111222", "carlos@andinas.com", empresa.ID)
	repo.agregar("52123456", "maria@andinas.com", empresa.ID)
	repo.enCarrera = true

	email := "maria@andinas.com"
	_, err := svc.Actualizar(context.Background(), mio.ID, dto.ActualizarRepresentanteRequest{Email: &email})

	apiErr := asAPIError(t, err)
	require.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "email")
}
