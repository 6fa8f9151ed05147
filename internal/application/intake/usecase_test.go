package intake_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edi-platform/loan-intake-api/internal/application/auth"
	"github.com/edi-platform/loan-intake-api/internal/application/intake"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/jsonl"
	"github.com/edi-platform/loan-intake-api/pkg/ulid"
)

// newIntakeUC arma el caso de uso sobre el backend local en un directorio temporal.
func newIntakeUC(t *testing.T) *intake.UseCase {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, jsonl.EnsureDataDir(dir))
	return intake.NewUseCase(jsonl.NewApplicantRepository(dir), ulid.NewGenerator())
}

var collector = auth.Identity{UserID: "user-123", Email: "collector@edi.org", Role: "collector"}

func TestSubmit_AsignaIDYCollectedBy(t *testing.T) {
	uc := newIntakeUC(t)
	ctx := context.Background()

	a, err := uc.Submit(ctx, collector, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID, "el registro aceptado debe salir con identificador asignado")
	assert.Len(t, a.ID, 26, "el identificador es un ULID canónico")
	assert.Equal(t, "user-123", a.CollectedBy,
		"collected_by se estampa desde la identidad autenticada")

	// Recuperable vía List con el mismo identificador.
	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a.ID, all[0].ID)
}

func TestSubmit_Invalido_NoEscribeNada(t *testing.T) {
	uc := newIntakeUC(t)
	ctx := context.Background()

	in := validRequest()
	in.Sex = "x"
	_, err := uc.Submit(ctx, collector, in)
	require.Error(t, err)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "un rechazo de validación no deja escritura parcial")
}

func TestSubmit_IDsUnicosYOrdenablesPorCreacion(t *testing.T) {
	uc := newIntakeUC(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 20; i++ {
		a, err := uc.Submit(ctx, collector, validRequest())
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}

	seen := make(map[string]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "los identificadores deben ser únicos entre llamadas")
		seen[id] = true
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	assert.Equal(t, ids, sorted,
		"ordenados lexicográficamente, los IDs coinciden con el orden de creación")
}

func TestUpdateCreditHistory_SoloEseCampoCambia(t *testing.T) {
	uc := newIntakeUC(t)
	ctx := context.Background()

	created, err := uc.Submit(ctx, collector, validRequest())
	require.NoError(t, err)

	updated, err := uc.UpdateCreditHistory(ctx, created.ID, "defaulted 2019, repaid 2021")
	require.NoError(t, err)
	assert.Equal(t, "defaulted 2019, repaid 2021", updated.CreditHistory)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "defaulted 2019, repaid 2021", got.CreditHistory)

	// Todo lo demás intacto.
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.FirstName, got.FirstName)
	assert.Equal(t, created.CollectedBy, got.CollectedBy)
	assert.True(t, created.BusinessCapitalETB.Equal(got.BusinessCapitalETB))
	assert.True(t, created.DateOfBirth.Equal(got.DateOfBirth))
}
