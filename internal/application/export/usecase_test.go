package export_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edi-platform/loan-intake-api/internal/application/export"
	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
)

// fakeRepo repositorio en memoria con el orden de listado fijo.
type fakeRepo struct {
	rows []*entity.Applicant
}

func (f *fakeRepo) Create(ctx context.Context, a *entity.Applicant) error { return nil }

func (f *fakeRepo) List(ctx context.Context) ([]*entity.Applicant, error) { return f.rows, nil }

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*entity.Applicant, error) {
	for _, a := range f.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) UpdateCreditHistory(ctx context.Context, id, creditHistory string) error {
	return nil
}

// captureSheets captura las filas que recibe el generador del libro.
type captureSheets struct {
	got []*entity.Applicant
}

func (c *captureSheets) Generate(applicants []*entity.Applicant) ([]byte, error) {
	c.got = applicants
	return []byte("xlsx"), nil
}

// captureForm captura la solicitud que recibe el generador del formulario.
type captureForm struct {
	got *entity.Applicant
}

func (c *captureForm) GenerateApplicantForm(ctx context.Context, a *entity.Applicant) ([]byte, error) {
	c.got = a
	return []byte("pdf"), nil
}

func TestWorkbook_AsignaNumeracionSecuencialEnModoLocal(t *testing.T) {
	// En el backend local nadie asigna auto_number: el caso de uso numera 1..N
	// según el orden de listado.
	repo := &fakeRepo{rows: []*entity.Applicant{
		{ID: "01A"}, {ID: "01B"}, {ID: "01C"},
	}}
	sheets := &captureSheets{}
	uc := export.NewUseCase(repo, sheets, &captureForm{})

	out, err := uc.Workbook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), out)

	require.Len(t, sheets.got, 3)
	for i, a := range sheets.got {
		assert.Equal(t, int64(i+1), a.AutoNumber)
	}
}

func TestWorkbook_RespetaNumeracionDelBackendRemoto(t *testing.T) {
	repo := &fakeRepo{rows: []*entity.Applicant{
		{ID: "01A", AutoNumber: 7}, {ID: "01B", AutoNumber: 9},
	}}
	sheets := &captureSheets{}
	uc := export.NewUseCase(repo, sheets, &captureForm{})

	_, err := uc.Workbook(context.Background())
	require.NoError(t, err)

	require.Len(t, sheets.got, 2)
	assert.Equal(t, int64(7), sheets.got[0].AutoNumber,
		"el auto_number asignado por el backend no se renumera")
	assert.Equal(t, int64(9), sheets.got[1].AutoNumber)
}

func TestApplicantForm_GeneraPDFDeLaSolicitud(t *testing.T) {
	repo := &fakeRepo{rows: []*entity.Applicant{{ID: "01A", FirstName: "Abebe"}}}
	form := &captureForm{}
	uc := export.NewUseCase(repo, &captureSheets{}, form)

	out, err := uc.ApplicantForm(context.Background(), "01A")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), out)
	require.NotNil(t, form.got)
	assert.Equal(t, "Abebe", form.got.FirstName)
}

func TestApplicantForm_IDInexistente(t *testing.T) {
	uc := export.NewUseCase(&fakeRepo{}, &captureSheets{}, &captureForm{})

	_, err := uc.ApplicantForm(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
