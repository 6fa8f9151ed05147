package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/edi-platform/loan-intake-api/internal/application/dto"
	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
	"github.com/edi-platform/loan-intake-api/pkg/jwt"
)

// MinPasswordLen longitud mínima de password para usuarios nuevos.
const MinPasswordLen = 6

// Identity es la identidad autenticada de la petición, extraída del JWT por el
// middleware y pasada explícitamente a cada operación. No hay estado ambiental:
// toda decisión de autorización parte de este valor.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// AdminList lista blanca de administradores por email (APP_ADMIN_EMAILS).
// La pertenencia otorga privilegios de admin con independencia del rol persistido.
type AdminList struct {
	emails map[string]struct{}
}

// NewAdminList construye la lista; los emails se comparan en minúsculas.
func NewAdminList(emails []string) AdminList {
	m := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			m[e] = struct{}{}
		}
	}
	return AdminList{emails: m}
}

// Contains indica si el email pertenece a la lista blanca.
func (l AdminList) Contains(email string) bool {
	_, ok := l.emails[strings.ToLower(email)]
	return ok
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Service casos de uso de identidad y acceso: login, alta de usuarios y listado.
type Service struct {
	users  repository.UserRepository
	admins AdminList
	jwtCfg JWTConfig
}

// NewService construye el servicio de auth.
func NewService(users repository.UserRepository, admins AdminList, jwtCfg JWTConfig) *Service {
	return &Service{users: users, admins: admins, jwtCfg: jwtCfg}
}

// IsAdmin resuelve si la identidad tiene privilegios de administración: por
// pertenencia a la lista blanca de emails o por rol admin de la sesión.
func (s *Service) IsAdmin(id Identity) bool {
	return s.admins.Contains(id.Email) || id.Role == entity.RoleAdmin
}

// Login verifica email/password contra el backend activo y emite el JWT de sesión.
//
// Usuario inexistente y password incorrecto devuelven el mismo
// ErrInvalidCredentials: la respuesta no permite enumerar usuarios.
func (s *Service) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(s.jwtCfg.Secret, user.ID, user.Email, user.Role, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// CreateUser crea un usuario nuevo. Solo un admin autenticado puede hacerlo.
// El password debe confirmarse (dos envíos idénticos) y cumplir la longitud
// mínima antes de hashearse con bcrypt; nunca se persiste en claro.
func (s *Service) CreateUser(ctx context.Context, caller Identity, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !s.IsAdmin(caller) {
		return nil, domain.ErrForbidden
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if len(in.Password) < MinPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	if !entity.ValidRole(in.Role) {
		return nil, &domain.ValidationError{Violations: []domain.FieldViolation{
			{Field: "role", Constraint: "oneof=collector admin"},
		}}
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers devuelve todos los usuarios (solo admin).
func (s *Service) ListUsers(ctx context.Context, caller Identity) ([]dto.UserResponse, error) {
	if !s.IsAdmin(caller) {
		return nil, domain.ErrForbidden
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}
