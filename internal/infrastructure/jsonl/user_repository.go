package jsonl

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre users.jsonl.
type UserRepo struct {
	mu   sync.Mutex
	path string
}

// NewUserRepository construye el adaptador local de usuarios.
func NewUserRepository(dataDir string) *UserRepo {
	return &UserRepo{path: filepath.Join(dataDir, usersFile)}
}

// Create agrega el usuario como una línea nueva. El email ya viene en minúsculas
// desde el caso de uso; aun así se rechaza el duplicado case-insensitive.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := readAll[entity.User](r.path)
	if err != nil {
		return err
	}
	for _, u := range existing {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	return appendLine(r.path, user)
}

// FindByID busca por identificador exacto.
func (r *UserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := readAll[entity.User](r.path)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindByEmail busca por email, case-insensitive.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := readAll[entity.User](r.path)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve todos los usuarios en orden de alta.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readAll[entity.User](r.path)
}
