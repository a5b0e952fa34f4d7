package service

import (
	"context"
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/config"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenDenylist revokes bearer tokens until their natural expiry (logout).
type TokenDenylist interface {
	Revocar(ctx context.Context, jti string, hasta time.Time) error
	Revocado(ctx context.Context, jti string) (bool, error)
}

type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, exp time.Time) error
	Perfil(ctx context.Context, principal Principal) (*dto.UsuarioResponse, error)
	ActualizarPerfil(ctx context.Context, principal Principal, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error)
	CambiarPassword(ctx context.Context, principal Principal, req dto.CambiarPasswordRequest) error
}

type authService struct {
	repo     repository.UsuarioRepository
	denylist TokenDenylist
	cfg      *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, denylist TokenDenylist, cfg *config.Config) AuthService {
	return &authService{repo: repo, denylist: denylist, cfg: cfg}
}

// Registrar creates a self-service account. Public registration always gets
// the empleado role; admins are created through the user management endpoints.
func (s *authService) Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error) {
	if existing, err := s.repo.ObtenerPorEmail(ctx, req.Email); err != nil && !noEncontrado(err) {
		return nil, err
	} else if existing != nil {
		return nil, apierror.ValidationField("email", "ya existe un usuario con ese email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	u := &model.Usuario{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          model.RolEmpleado,
	}
	if err := s.repo.Crear(ctx, u); err != nil {
		return nil, duplicado(err, "email", "ya existe un usuario con ese email")
	}
	resp := mapUsuario(*u)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.ObtenerPorEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Unauthorized("credenciales invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("credenciales invalidas")
	}

	token, err := s.generarToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        mapUsuario(*user),
	}, nil
}

// Logout denylists the token's jti until its expiry; the auth middleware
// rejects revoked tokens afterwards.
func (s *authService) Logout(ctx context.Context, jti string, exp time.Time) error {
	return s.denylist.Revocar(ctx, jti, exp)
}

func (s *authService) Perfil(ctx context.Context, principal Principal) (*dto.UsuarioResponse, error) {
	user, err := s.repo.ObtenerPorID(ctx, principal.ID)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("usuario no encontrado")
		}
		return nil, err
	}
	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) ActualizarPerfil(ctx context.Context, principal Principal, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.ObtenerPorID(ctx, principal.ID)
	if err != nil {
		if noEncontrado(err) {
			return nil, apierror.NotFound("usuario no encontrado")
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.ObtenerPorEmail(ctx, *req.Email)
		if err != nil && !noEncontrado(err) {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apierror.ValidationField("email", "ya existe un usuario con ese email")
		}
		user.Email = *req.Email
	}
	if req.Nombre != nil {
		user.Nombre = *req.Nombre
	}

	if err := s.repo.Actualizar(ctx, user); err != nil {
		return nil, duplicado(err, "email", "ya existe un usuario con ese email")
	}
	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) CambiarPassword(ctx context.Context, principal Principal, req dto.CambiarPasswordRequest) error {
	user, err := s.repo.ObtenerPorID(ctx, principal.ID)
	if err != nil {
		if noEncontrado(err) {
			return apierror.NotFound("usuario no encontrado")
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.PasswordActual)); err != nil {
		return apierror.ValidationField("password_actual", "la contrasena actual no es correcta")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordNueva), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.repo.Actualizar(ctx, user)
}

func (s *authService) generarToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"rol":     user.Rol,
		"jti":     uuid.NewString(),
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
