package intake

import (
	"context"

	"github.com/edi-platform/loan-intake-api/internal/application/auth"
	"github.com/edi-platform/loan-intake-api/internal/application/dto"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
	"github.com/edi-platform/loan-intake-api/pkg/ulid"
)

// UseCase casos de uso de captura: alta de solicitantes, consulta y la única
// corrección permitida (credit_history, solo admin, vía lookup directo por id).
type UseCase struct {
	applicants repository.ApplicantRepository
	validator  *Validator
	ids        *ulid.Generator
}

// NewUseCase construye el caso de uso de captura.
func NewUseCase(applicants repository.ApplicantRepository, ids *ulid.Generator) *UseCase {
	return &UseCase{
		applicants: applicants,
		validator:  NewValidator(),
		ids:        ids,
	}
}

// Submit valida el registro candidato y, si pasa, lo persiste con un ULID nuevo
// y la referencia collected_by del usuario autenticado. Un rechazo de esquema
// no escribe nada: el envío se descarta completo.
func (uc *UseCase) Submit(ctx context.Context, caller auth.Identity, in dto.SubmitApplicantRequest) (*entity.Applicant, error) {
	applicant, err := uc.validator.Normalize(in)
	if err != nil {
		return nil, err
	}
	applicant.ID = uc.ids.New()
	applicant.CollectedBy = caller.UserID
	if err := uc.applicants.Create(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

// List devuelve todos los registros en orden de creación.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Applicant, error) {
	return uc.applicants.List(ctx)
}

// GetByID devuelve un registro por identificador.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Applicant, error) {
	return uc.applicants.GetByID(ctx, id)
}

// UpdateCreditHistory corrige el único campo mutable y devuelve el registro
// actualizado. El resto de campos queda intacto.
func (uc *UseCase) UpdateCreditHistory(ctx context.Context, id, creditHistory string) (*entity.Applicant, error) {
	if err := uc.applicants.UpdateCreditHistory(ctx, id, creditHistory); err != nil {
		return nil, err
	}
	return uc.applicants.GetByID(ctx, id)
}
