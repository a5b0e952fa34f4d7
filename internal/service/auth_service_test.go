package service

import (
	"context"
	"testing"
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/config"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDenylist struct {
	revocados map[string]time.Time
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revocados: make(map[string]time.Time)}
}

func (d *stubDenylist) Revocar(_ context.Context, jti string, hasta time.Time) error {
	d.revocados[jti] = hasta
	return nil
}

func (d *stubDenylist) Revocado(_ context.Context, jti string) (bool, error) {
	_, ok := d.revocados[jti]
	return ok, nil
}

var _ TokenDenylist = (*stubDenylist)(nil)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "clave-de-prueba",
		JWTExpirationHours: 2,
	}
}

func TestRegistrarSiempreEmpleado(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, newStubDenylist(), testConfig())

	resp, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Nombre:   "Carlos Perez",
		Email:    "carlos@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Public registration never grants admin
	assert.Equal(t, model.RolEmpleado, resp.Rol)
	assert.Equal(t, "carlos@test.com", resp.Email)
}

func TestRegistrarEmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	existente := repo.agregar(model.RolEmpleado)
	svc := NewAuthService(repo, newStubDenylist(), testConfig())

	_, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Nombre:   "Otro",
		Email:    existente.Email,
		Password: "password123",
	})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "email")
}

func TestLoginExitoso(t *testing.T) {
	repo := newStubUsuarioRepo()
	cfg := testConfig()
	svc := NewAuthService(repo, newStubDenylist(), cfg)

	creado, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Nombre:   "Ana Gomez",
		Email:    "ana@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, cfg.JWTExpirationHours*3600, resp.ExpiresIn)
	assert.Equal(t, creado.ID, resp.User.ID)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, creado.ID, claims["user_id"])
	assert.Equal(t, "ana@test.com", claims["email"])
	assert.Equal(t, model.RolEmpleado, claims["rol"])
	assert.NotEmpty(t, claims["jti"])
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, newStubDenylist(), testConfig())

	_, err := svc.Registrar(context.Background(), dto.RegistrarRequest{
		Nombre:   "Ana Gomez",
		Email:    "ana@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@test.com",
		Password: "otra-clave",
	})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 401, apiErr.Status)
}

func TestLoginEmailDesconocido(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), newStubDenylist(), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@test.com",
		Password: "password123",
	})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 401, apiErr.Status)
}

func TestLogoutRevocaToken(t *testing.T) {
	denylist := newStubDenylist()
	svc := NewAuthService(newStubUsuarioRepo(), denylist, testConfig())

	exp := time.Now().Add(time.Hour)
	require.NoError(t, svc.Logout(context.Background(), "jti-123", exp))

	revocado, err := denylist.Revocado(context.Background(), "jti-123")
	require.NoError(t, err)
	assert.True(t, revocado)
	assert.Equal(t, exp, denylist.revocados["jti-123"])
}

func TestCambiarPasswordActualIncorrecta(t *testing.T) {
	repo := newStubUsuarioRepo()
	user := repo.agregar(model.RolEmpleado) // password "password123"
	svc := NewAuthService(repo, newStubDenylist(), testConfig())

	p := Principal{ID: user.ID, Rol: user.Rol}
	err := svc.CambiarPassword(context.Background(), p, dto.CambiarPasswordRequest{
		PasswordActual: "equivocada",
		PasswordNueva:  "nueva-clave-123",
	})

	apiErr := asAPIError(t, err)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "password_actual")
}

func TestCambiarPasswordExitoso(t *testing.T) {
	repo := newStubUsuarioRepo()
	user := repo.agregar(model.RolEmpleado)
	svc := NewAuthService(repo, newStubDenylist(), testConfig())

	p := Principal{ID: user.ID, Rol: user.Rol}
	err := svc.CambiarPassword(context.Background(), p, dto.CambiarPasswordRequest{
		PasswordActual: "password123",
		PasswordNueva:  "nueva-clave-123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    user.Email,
		Password: "nueva-clave-123",
	})
	assert.NoError(t, err)
}
