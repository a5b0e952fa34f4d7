package service

import (
	"context"
	"testing"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubUsuarioRepo is an in-memory UsuarioRepository for testing.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	list := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		list = append(list, *u)
	}
	return list, nil
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) Actualizar(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.usuarios, id)
	return nil
}

func (r *stubUsuarioRepo) ContarPorRol(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, u := range r.usuarios {
		counts[u.Rol]++
	}
	return counts, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func (r *stubUsuarioRepo) agregar(rol string) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	u := &model.Usuario{
		ID:           uuid.New(),
		Nombre:       "Usuario " + rol,
		Email:        uuid.NewString() + "@test.com",
		PasswordHash: string(hash),
		Rol:          rol,
	}
	r.usuarios[u.ID] = u
	return u
}

func asAPIError(t *testing.T, err error) *apierror.Error {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apierror.Error)
	require.True(t, ok, "expected *apierror.Error, got %T", err)
	return apiErr
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestUsuarioEstadisticasSinUsuarios(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo())

	resp, err := svc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Total)
	assert.Equal(t, int64(0), resp.PorRol[model.RolAdmin])
	assert.Equal(t, int64(0), resp.PorRol[model.RolEmpleado])
	assert.Equal(t, 0.0, resp.Porcentajes[model.RolAdmin])
	assert.Equal(t, 0.0, resp.Porcentajes[model.RolEmpleado])
}

func TestUsuarioEstadisticasPorcentajes(t *testing.T) {
	repo := newStubUsuarioRepo()
	repo.agregar(model.RolAdmin)
	for i := 0; i < 3; i++ {
		repo.agregar(model.RolEmpleado)
	}
	svc := NewUsuarioService(repo)

	resp, err := svc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.Total)
	assert.Equal(t, 25.0, resp.Porcentajes[model.RolAdmin])
	assert.Equal(t, 75.0, resp.Porcentajes[model.RolEmpleado])
	assert.Equal(t, 100.0, resp.Porcentajes[model.RolAdmin]+resp.Porcentajes[model.RolEmpleado])
}

func TestUsuarioEstadisticasRedondeo(t *testing.T) {
	repo := newStubUsuarioRepo()
	repo.agregar(model.RolAdmin)
	repo.agregar(model.RolEmpleado)
	repo.agregar(model.RolEmpleado)
	svc := NewUsuarioService(repo)

	resp, err := svc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 33.33, resp.Porcentajes[model.RolAdmin])
	assert.Equal(t, 66.67, resp.Porcentajes[model.RolEmpleado])
}

func TestUsuarioEliminarPropiaCuenta(t *testing.T) {
	repo := newStubUsuarioRepo()
	admin := repo.agregar(model.RolAdmin)
	svc := NewUsuarioService(repo)

	p := Principal{ID: admin.ID, Rol: model.RolAdmin}
	err := svc.Eliminar(context.Background(), p, admin.ID)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 403, apiErr.Status)
	// The record must survive the rejected delete
	_, existe := repo.usuarios[admin.ID]
	assert.True(t, existe)
}

func TestUsuarioEliminarSinSerAdmin(t *testing.T) {
	repo := newStubUsuarioRepo()
	empleado := repo.agregar(model.RolEmpleado)
	otro := repo.agregar(model.RolEmpleado)
	svc := NewUsuarioService(repo)

	p := Principal{ID: empleado.ID, Rol: model.RolEmpleado}
	err := svc.Eliminar(context.Background(), p, otro.ID)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 403, apiErr.Status)
}

func TestUsuarioEliminarComoAdmin(t *testing.T) {
	repo := newStubUsuarioRepo()
	admin := repo.agregar(model.RolAdmin)
	empleado := repo.agregar(model.RolEmpleado)
	svc := NewUsuarioService(repo)

	p := Principal{ID: admin.ID, Rol: model.RolAdmin}
	err := svc.Eliminar(context.Background(), p, empleado.ID)

	require.NoError(t, err)
	_, existe := repo.usuarios[empleado.ID]
	assert.False(t, existe)
}

func TestUsuarioActualizarRolSoloAdmin(t *testing.T) {
	repo := newStubUsuarioRepo()
	empleado := repo.agregar(model.RolEmpleado)
	svc := NewUsuarioService(repo)

	rol := model.RolAdmin
	p := Principal{ID: empleado.ID, Rol: model.RolEmpleado}
	_, err := svc.Actualizar(context.Background(), p, empleado.ID, dto.ActualizarUsuarioRequest{Rol: &rol})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, model.RolEmpleado, repo.usuarios[empleado.ID].Rol)
}

func TestUsuarioObtenerAjeno(t *testing.T) {
	repo := newStubUsuarioRepo()
	empleado := repo.agregar(model.RolEmpleado)
	otro := repo.agregar(model.RolEmpleado)
	svc := NewUsuarioService(repo)

	p := Principal{ID: empleado.ID, Rol: model.RolEmpleado}
	_, err := svc.Obtener(context.Background(), p, otro.ID)

	apiErr := asAPIError(t, err)
	assert.Equal(t, 403, apiErr.Status)
}

func TestUsuarioCrearEmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	existente := repo.agregar(model.RolEmpleado)
	svc := NewUsuarioService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Otro",
		Email:    existente.Email,
		Password: "password123",
		Rol:      model.RolEmpleado,
	})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "email")
}
