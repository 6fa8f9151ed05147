package intake_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edi-platform/loan-intake-api/internal/application/dto"
	"github.com/edi-platform/loan-intake-api/internal/application/intake"
	"github.com/edi-platform/loan-intake-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// validRequest devuelve un registro candidato completamente válido, con licencia.
func validRequest() dto.SubmitApplicantRequest {
	return dto.SubmitApplicantRequest{
		Region: "Addis Ababa", Batch: "B-2024-01", Zone: "Zone 3", Woreda: "W05", Kebele: "K09",

		FirstName: "Abebe", FatherName: "Kebede", GrandfatherName: "Tesfaye",
		DateOfBirth: "1990-01-01", DateCollected: "2024-06-15",
		Sex: "f", ApplicantAddress: "Kebele 09, House 123",

		HasBusinessLicense: true, TradeLicenseNumber: "TL-778", Trade: "Bakery",
		RegistrationNumber: "RN-1020", TINNumber: "0011223344",
		DateOfBusinessLicense: "2021-03-10",

		EnterpriseCategory: "micro", OwnershipForm: "soleproprietorship",
		BusinessSector: "manufacturing", NumberOfOwners: 1,
		OwnersNames: "Abebe Kebede", RegisteredAddress: "Woreda 05",
		BusinessPremise: "rented",

		MaleEmployees: 2, FemaleEmployees: 3,
		BusinessCapitalETB:   decimal.NewFromInt(50000),
		MonthlyRevenueETB:    decimal.NewFromInt(12000),
		AnnualRevenueLast3:   decimal.NewFromInt(380000),
		NetProfitLast3:       decimal.NewFromInt(45000),
		FinancingRequiredETB: decimal.NewFromInt(200000),
		SourceOfRepayment:    "business income", PurposeOfFunds: "working capital",

		GuarantorFirstName: "Mulu", GuarantorFatherName: "Haile", GuarantorGrandfatherName: "Girma",
		GuarantorPhone: "+251911000000", GuarantorMonthlyIncome: decimal.NewFromInt(9000),

		CreditHistory: "none", CBEAccountNumber: "1000012345678",
		CBEBranch: "Bole", CBECity: "Addis Ababa", ModeOfFinance: "conventional",
	}
}

// violationFields extrae los nombres de campo del error de validación.
func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "el error debe ser *domain.ValidationError")
	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro válido → aceptado con valores preservados
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_RegistroValido_PreservaValores(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()

	a, err := val.Normalize(in)
	require.NoError(t, err, "un registro completamente válido debe aceptarse")

	assert.Equal(t, "Addis Ababa", a.Region)
	assert.Equal(t, "Abebe", a.FirstName)
	assert.Equal(t, "f", a.Sex)
	assert.Equal(t, "1990-01-01", a.DateOfBirth.String())
	assert.Equal(t, "2024-06-15", a.DateCollected.String())
	assert.True(t, a.HasBusinessLicense)
	require.NotNil(t, a.DateOfBusinessLicense)
	assert.Equal(t, "2021-03-10", a.DateOfBusinessLicense.String())
	assert.Equal(t, "micro", a.EnterpriseCategory)
	assert.Equal(t, 1, a.NumberOfOwners)
	assert.True(t, a.BusinessCapitalETB.Equal(decimal.NewFromInt(50000)),
		"los montos deben preservarse sin alteración")
	assert.True(t, a.NetProfitLast3.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, "conventional", a.ModeOfFinance)
	assert.Equal(t, 5, a.TotalEmployees())
}

func TestNormalize_SinLicencia_FechaOpcional(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.HasBusinessLicense = false
	in.TradeLicenseNumber = ""
	in.DateOfBusinessLicense = ""

	a, err := val.Normalize(in)
	require.NoError(t, err, "sin licencia la fecha de licencia no es requerida")
	assert.Nil(t, a.DateOfBusinessLicense)
}

func TestNormalize_LimpiaEspaciosYNFC(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.FirstName = "  Abebe  "
	// "é" como e + combinante U+0301; NFC lo compone en un solo code point.
	in.OwnersNames = "José Abebe"

	a, err := val.Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, "Abebe", a.FirstName, "el texto libre debe recortarse")
	assert.Equal(t, "José Abebe", a.OwnersNames, "el texto libre debe quedar en forma NFC")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos: la violación nombra el campo y se reportan todas juntas
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_SexoFueraDeConjunto_RechazaNombrandoCampo(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.Sex = "x"

	_, err := val.Normalize(in)
	require.Error(t, err)
	assert.Contains(t, violationFields(t, err), "sex",
		"la violación debe nombrar el campo sex por su clave JSON")
}

func TestNormalize_ConjuntosCerrados_CaseSensitive(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.EnterpriseCategory = "Micro" // mayúscula: no pertenece al conjunto

	_, err := val.Normalize(in)
	require.Error(t, err, "la comparación de enumeraciones es case-sensitive")
	assert.Contains(t, violationFields(t, err), "enterprise_category")
}

func TestNormalize_RequeridoVacio_Rechaza(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.Region = ""

	_, err := val.Normalize(in)
	require.Error(t, err)
	assert.Contains(t, violationFields(t, err), "region")
}

func TestNormalize_SoloEspacios_FallaRequired(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.Kebele = "   "

	_, err := val.Normalize(in)
	require.Error(t, err, "un campo de solo espacios no satisface required")
	assert.Contains(t, violationFields(t, err), "kebele")
}

func TestNormalize_TodasLasViolacionesJuntas(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.Sex = "x"
	in.Region = ""
	in.ModeOfFinance = "cash"
	in.DateOfBirth = "01/01/1990" // formato inválido

	_, err := val.Normalize(in)
	require.Error(t, err)
	fields := violationFields(t, err)
	// Todo-o-nada: el llamador recibe la lista completa en una sola pasada.
	assert.Contains(t, fields, "sex")
	assert.Contains(t, fields, "region")
	assert.Contains(t, fields, "mode_of_finance")
	assert.Contains(t, fields, "date_of_birth")
	assert.GreaterOrEqual(t, len(fields), 4)
}

func TestNormalize_MontoNegativo_Rechaza(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.NetProfitLast3 = decimal.NewFromInt(-500)

	_, err := val.Normalize(in)
	require.Error(t, err, "todo campo financiero debe ser no negativo")
	assert.Contains(t, violationFields(t, err), "net_profit_last3")
}

func TestNormalize_CeroPropietarios_Rechaza(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.NumberOfOwners = 0

	_, err := val.Normalize(in)
	require.Error(t, err)
	assert.Contains(t, violationFields(t, err), "number_of_owners")
}

func TestNormalize_LicenciaSinFecha_Rechaza(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.HasBusinessLicense = true
	in.DateOfBusinessLicense = ""

	_, err := val.Normalize(in)
	require.Error(t, err, "con licencia la fecha de registro es obligatoria")
	assert.Contains(t, violationFields(t, err), "date_of_business_license")
}

func TestNormalize_ErrorEsValidationError(t *testing.T) {
	val := intake.NewValidator()
	in := validRequest()
	in.Sex = "x"

	_, err := val.Normalize(in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("sex"))
	assert.False(t, verr.HasField("region"))
}
