package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const usersTable = "users"

// UserRepo implementación del puerto UserRepository sobre la tabla remota users
// (columnas: id, email, password_hash, role).
type UserRepo struct {
	client *Client
}

// NewUserRepository construye el adaptador remoto de usuarios.
func NewUserRepository(client *Client) *UserRepo {
	return &UserRepo{client: client}
}

// Create inserta el usuario; operación de administración, requiere la
// credencial elevada. Cero filas devueltas → ErrNothingPersisted.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	raw, err := r.client.do(ctx, http.MethodPost, usersTable, nil, user, true)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.status == http.StatusConflict {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	rows, err := decodeRows[entity.User](raw)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrNothingPersisted
	}
	return nil
}

// FindByID busca por identificador exacto con la credencial restringida.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+id)
	q.Set("limit", "1")
	return r.findOne(ctx, q)
}

// FindByEmail busca por email. Los emails se persisten en minúsculas, así que
// el filtro exacto sobre el email normalizado resulta case-insensitive.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("email", "eq."+strings.ToLower(email))
	q.Set("limit", "1")
	return r.findOne(ctx, q)
}

// List devuelve todos los usuarios; listado entre usuarios, requiere la
// credencial elevada.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "email.asc")
	raw, err := r.client.do(ctx, http.MethodGet, usersTable, q, nil, true)
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.User](raw)
}

func (r *UserRepo) findOne(ctx context.Context, q url.Values) (*entity.User, error) {
	raw, err := r.client.do(ctx, http.MethodGet, usersTable, q, nil, false)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[entity.User](raw)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}
