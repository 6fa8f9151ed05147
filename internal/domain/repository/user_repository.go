package repository

import (
	"context"

	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La búsqueda por email es case-insensitive: las implementaciones normalizan
// a minúsculas antes de comparar. Find* devuelve domain.ErrNotFound si no hay
// coincidencia. Los usuarios nunca se eliminan.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
