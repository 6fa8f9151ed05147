package supabase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
)

var _ repository.ApplicantRepository = (*ApplicantRepo)(nil)

const applicantsTable = "applicants"

// ApplicantRepo implementación del puerto ApplicantRepository sobre la tabla
// remota applicants (id, auto_number, todos los campos del registro y collected_by).
// auto_number lo asigna el backend (columna identity) y define el orden de listado.
type ApplicantRepo struct {
	client *Client
}

// NewApplicantRepository construye el adaptador remoto de solicitantes.
func NewApplicantRepository(client *Client) *ApplicantRepo {
	return &ApplicantRepo{client: client}
}

// Create inserta el registro con la credencial restringida: el alta es la
// operación del propietario de la fila. Cero filas devueltas → ErrNothingPersisted.
func (r *ApplicantRepo) Create(ctx context.Context, applicant *entity.Applicant) error {
	raw, err := r.client.do(ctx, http.MethodPost, applicantsTable, nil, applicant, false)
	if err != nil {
		return err
	}
	rows, err := decodeRows[entity.Applicant](raw)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrNothingPersisted
	}
	// El backend asigna auto_number en la inserción; se refleja en el registro.
	applicant.AutoNumber = rows[0].AutoNumber
	return nil
}

// List devuelve todos los registros ordenados por auto_number ascendente.
// Usa la credencial elevada cuando está configurada (vista entre usuarios);
// si no, la restringida devuelve lo que la política de filas permita.
func (r *ApplicantRepo) List(ctx context.Context) ([]*entity.Applicant, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "auto_number.asc")
	raw, err := r.client.do(ctx, http.MethodGet, applicantsTable, q, nil, r.client.Elevated())
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.Applicant](raw)
}

// GetByID busca por identificador exacto.
func (r *ApplicantRepo) GetByID(ctx context.Context, id string) (*entity.Applicant, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+id)
	q.Set("limit", "1")
	raw, err := r.client.do(ctx, http.MethodGet, applicantsTable, q, nil, r.client.Elevated())
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[entity.Applicant](raw)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}

// UpdateCreditHistory aplica el parche acotado a credit_history; operación de
// administración, requiere la credencial elevada. Una respuesta sin filas
// (id inexistente o política que descartó el update en silencio) se reporta
// como ErrNothingPersisted: el llamador decide reintentar o abortar.
func (r *ApplicantRepo) UpdateCreditHistory(ctx context.Context, id, creditHistory string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	patch := map[string]string{"credit_history": creditHistory}
	raw, err := r.client.do(ctx, http.MethodPatch, applicantsTable, q, patch, true)
	if err != nil {
		return err
	}
	rows, err := decodeRows[entity.Applicant](raw)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrNothingPersisted
	}
	return nil
}
