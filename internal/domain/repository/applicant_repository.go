package repository

import (
	"context"

	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
)

// ApplicantRepository define el puerto de persistencia para Applicant.
//
// La superficie de actualización está acotada estructuralmente a credit_history:
// es el único campo mutable después de la creación, así que el puerto no expone
// un Update genérico. List devuelve los registros en orden de creación
// (auto_number en el backend remoto, orden de líneas en el local).
// GetByID y UpdateCreditHistory devuelven domain.ErrNotFound si el id no existe.
type ApplicantRepository interface {
	Create(ctx context.Context, applicant *entity.Applicant) error
	List(ctx context.Context) ([]*entity.Applicant, error)
	GetByID(ctx context.Context, id string) (*entity.Applicant, error)
	UpdateCreditHistory(ctx context.Context, id, creditHistory string) error
}
