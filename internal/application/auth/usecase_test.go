package auth_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edi-platform/loan-intake-api/internal/application/auth"
	"github.com/edi-platform/loan-intake-api/internal/application/dto"
	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/jsonl"
)

func newAuthService(t *testing.T, adminEmails ...string) (*auth.Service, *jsonl.UserRepo) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, jsonl.EnsureDataDir(dir))
	users := jsonl.NewUserRepository(dir)
	jwtCfg := auth.JWTConfig{Secret: "secreto-de-pruebas", ExpMinutes: 60, Issuer: "loan-intake-api"}
	return auth.NewService(users, auth.NewAdminList(adminEmails), jwtCfg), users
}

func adminIdentity() auth.Identity {
	return auth.Identity{UserID: "u-admin", Email: "admin@edi.org", Role: entity.RoleAdmin}
}

func createUser(t *testing.T, svc *auth.Service, email, password, role string) *dto.UserResponse {
	t.Helper()
	out, err := svc.CreateUser(context.Background(), adminIdentity(), dto.CreateUserRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
		Role:            role,
	})
	require.NoError(t, err)
	return out
}

func TestCreateUser_NuncaPersisteElPasswordEnClaro(t *testing.T) {
	svc, users := newAuthService(t)
	createUser(t, svc, "ana@edi.org", "colateral", entity.RoleCollector)

	stored, err := users.FindByEmail(context.Background(), "ana@edi.org")
	require.NoError(t, err)
	assert.NotEqual(t, "colateral", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "el hash debe ser bcrypt")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("colateral")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("otra-cosa")))
}

func TestLogin_EmiteTokenYNormalizaEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	createUser(t, svc, "ana@edi.org", "colateral", entity.RoleCollector)

	out, err := svc.Login(context.Background(), dto.LoginRequest{Email: "  ANA@edi.org ", Password: "colateral"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@edi.org", out.User.Email)
	assert.Equal(t, entity.RoleCollector, out.User.Role)
}

func TestLogin_ErrorGenericoSinDistinguirCausa(t *testing.T) {
	svc, _ := newAuthService(t)
	createUser(t, svc, "ana@edi.org", "colateral", entity.RoleCollector)

	// Usuario inexistente y password incorrecto producen el mismo error:
	// la respuesta no permite enumerar cuentas.
	_, errUnknown := svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@edi.org", Password: "colateral"})
	_, errWrongPass := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@edi.org", Password: "incorrecto"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestCreateUser_SoloAdmin(t *testing.T) {
	svc, users := newAuthService(t)
	collector := auth.Identity{UserID: "u-col", Email: "col@edi.org", Role: entity.RoleCollector}

	_, err := svc.CreateUser(context.Background(), collector, dto.CreateUserRequest{
		Email:           "nueva@edi.org",
		Password:        "segura1",
		ConfirmPassword: "segura1",
		Role:            entity.RoleCollector,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = users.FindByEmail(context.Background(), "nueva@edi.org")
	assert.ErrorIs(t, err, domain.ErrNotFound, "el intento prohibido no debe dejar rastro")
}

func TestCreateUser_ValidacionesDePassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.CreateUser(context.Background(), adminIdentity(), dto.CreateUserRequest{
		Email: "ana@edi.org", Password: "segura1", ConfirmPassword: "segura2", Role: entity.RoleCollector,
	})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	_, err = svc.CreateUser(context.Background(), adminIdentity(), dto.CreateUserRequest{
		Email: "ana@edi.org", Password: "corta", ConfirmPassword: "corta", Role: entity.RoleCollector,
	})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestCreateUser_RolDesconocido(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.CreateUser(context.Background(), adminIdentity(), dto.CreateUserRequest{
		Email: "ana@edi.org", Password: "segura1", ConfirmPassword: "segura1", Role: "gerente",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("role"))
}

func TestCreateUser_EmailDuplicado(t *testing.T) {
	svc, _ := newAuthService(t)
	createUser(t, svc, "ana@edi.org", "colateral", entity.RoleCollector)

	_, err := svc.CreateUser(context.Background(), adminIdentity(), dto.CreateUserRequest{
		Email: "ANA@edi.org", Password: "segura1", ConfirmPassword: "segura1", Role: entity.RoleCollector,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestListUsers_SoloAdmin(t *testing.T) {
	svc, _ := newAuthService(t)
	createUser(t, svc, "ana@edi.org", "colateral", entity.RoleCollector)
	createUser(t, svc, "beto@edi.org", "colateral", entity.RoleAdmin)

	all, err := svc.ListUsers(context.Background(), adminIdentity())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	collector := auth.Identity{UserID: "u-col", Email: "col@edi.org", Role: entity.RoleCollector}
	_, err = svc.ListUsers(context.Background(), collector)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestIsAdmin_ListaBlancaOtorgaPrivilegios(t *testing.T) {
	svc, _ := newAuthService(t, "Jefa@EDI.org")

	// Un collector cuyo email está en APP_ADMIN_EMAILS es admin aunque su rol
	// persistido no lo sea; la comparación ignora mayúsculas.
	whitelisted := auth.Identity{UserID: "u1", Email: "jefa@edi.org", Role: entity.RoleCollector}
	plain := auth.Identity{UserID: "u2", Email: "col@edi.org", Role: entity.RoleCollector}
	byRole := auth.Identity{UserID: "u3", Email: "otro@edi.org", Role: entity.RoleAdmin}

	assert.True(t, svc.IsAdmin(whitelisted))
	assert.False(t, svc.IsAdmin(plain))
	assert.True(t, svc.IsAdmin(byRole))
}
