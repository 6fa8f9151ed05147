package jsonl

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
)

var _ repository.ApplicantRepository = (*ApplicantRepo)(nil)

// ApplicantRepo implementación del puerto ApplicantRepository sobre applicants.jsonl.
//
// El orden de líneas del archivo ES el orden de creación: create solo agrega al
// final y los ULID de los registros ordenan lexicográficamente igual que las líneas.
type ApplicantRepo struct {
	mu   sync.Mutex
	path string
}

// NewApplicantRepository construye el adaptador local de solicitantes.
func NewApplicantRepository(dataDir string) *ApplicantRepo {
	return &ApplicantRepo{path: filepath.Join(dataDir, applicantsFile)}
}

// Create agrega el registro como una línea nueva al final del archivo.
func (r *ApplicantRepo) Create(_ context.Context, applicant *entity.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return appendLine(r.path, applicant)
}

// List devuelve todos los registros en orden de creación.
func (r *ApplicantRepo) List(_ context.Context) ([]*entity.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readAll[entity.Applicant](r.path)
}

// GetByID busca por identificador exacto.
func (r *ApplicantRepo) GetByID(_ context.Context, id string) (*entity.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	applicants, err := readAll[entity.Applicant](r.path)
	if err != nil {
		return nil, err
	}
	for _, a := range applicants {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// UpdateCreditHistory lee el archivo completo, corrige el registro en memoria y
// reescribe el archivo desde cero (temporal + rename). Aceptable solo porque el
// volumen es pequeño y hay un único proceso escritor.
func (r *ApplicantRepo) UpdateCreditHistory(_ context.Context, id, creditHistory string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	applicants, err := readAll[entity.Applicant](r.path)
	if err != nil {
		return err
	}
	found := false
	for _, a := range applicants {
		if a.ID == id {
			a.CreditHistory = creditHistory
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return rewriteAll(r.path, applicants)
}
