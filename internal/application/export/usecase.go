// Package export transforma el conjunto de registros almacenados en artefactos
// descargables: el libro Excel completo y el formulario imprimible de una solicitud.
package export

import (
	"context"

	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
)

// WorkbookFilename nombre del artefacto Excel descargable.
const WorkbookFilename = "EDI_export.xlsx"

// SpreadsheetGenerator puerto del generador del libro Excel. El layout de hojas
// y celdas es responsabilidad del adaptador; este caso de uso solo entrega las
// filas con su numeración resuelta.
type SpreadsheetGenerator interface {
	Generate(applicants []*entity.Applicant) ([]byte, error)
}

// FormGenerator puerto del formulario imprimible de una solicitud individual.
type FormGenerator interface {
	GenerateApplicantForm(ctx context.Context, applicant *entity.Applicant) ([]byte, error)
}

// UseCase caso de uso de exportación (solo admin; el gating ocurre en el router).
type UseCase struct {
	applicants repository.ApplicantRepository
	sheets     SpreadsheetGenerator
	form       FormGenerator
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(applicants repository.ApplicantRepository, sheets SpreadsheetGenerator, form FormGenerator) *UseCase {
	return &UseCase{applicants: applicants, sheets: sheets, form: form}
}

// Workbook exporta el conjunto completo de registros como libro Excel binario.
// Los registros sin auto_number preasignado por el backend (modo local) reciben
// uno secuencial 1..N según el orden de listado actual.
func (uc *UseCase) Workbook(ctx context.Context) ([]byte, error) {
	applicants, err := uc.applicants.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, a := range applicants {
		if a.AutoNumber == 0 {
			a.AutoNumber = int64(i + 1)
		}
	}
	return uc.sheets.Generate(applicants)
}

// ApplicantForm genera el PDF imprimible de una solicitud concreta.
func (uc *UseCase) ApplicantForm(ctx context.Context, id string) ([]byte, error) {
	applicant, err := uc.applicants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.form.GenerateApplicantForm(ctx, applicant)
}
