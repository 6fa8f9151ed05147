package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/excel"
)

func sampleApplicant(n int64, id string) *entity.Applicant {
	license := entity.NewDate(2021, time.March, 15)
	return &entity.Applicant{
		ID:         id,
		AutoNumber: n,

		Region: "Addis Ababa",
		Batch:  "B-2026-01",
		Zone:   "Zone 1",
		Woreda: "Woreda 05",
		Kebele: "Kebele 09",

		FirstName:        "Abebe",
		FatherName:       "Kebede",
		GrandfatherName:  "Tesfaye",
		DateOfBirth:      entity.NewDate(1990, time.May, 12),
		DateCollected:    entity.NewDate(2026, time.August, 20),
		Sex:              entity.SexMale,
		ApplicantAddress: "Bole, Addis Ababa",

		HasBusinessLicense:    true,
		TradeLicenseNumber:    "TL-0042",
		Trade:                 "textiles",
		RegistrationNumber:    "REG-7781",
		TINNumber:             "0012345678",
		DateOfBusinessLicense: &license,

		EnterpriseCategory: entity.CategoryMicro,
		OwnershipForm:      entity.OwnershipSoleProprietorship,
		BusinessSector:     entity.SectorManufacturing,
		NumberOfOwners:     1,
		OwnersNames:        "Abebe Kebede",
		RegisteredAddress:  "Bole, Addis Ababa",
		BusinessPremise:    entity.PremiseRented,

		MaleEmployees:        3,
		FemaleEmployees:      2,
		BusinessCapitalETB:   decimal.NewFromInt(150000),
		MonthlyRevenueETB:    decimal.NewFromInt(42000),
		AnnualRevenueLast3:   decimal.NewFromInt(480000),
		NetProfitLast3:       decimal.NewFromInt(96000),
		FinancingRequiredETB: decimal.NewFromInt(250000),
		SourceOfRepayment:    "business revenue",
		PurposeOfFunds:       "working capital",

		GuarantorFirstName:       "Marta",
		GuarantorFatherName:      "Alemu",
		GuarantorGrandfatherName: "Bekele",
		GuarantorPhone:           "+251911234567",
		GuarantorMonthlyIncome:   decimal.NewFromInt(18000),

		CreditHistory:    "no prior loans",
		CBEAccountNumber: "1000234567890",
		CBEBranch:        "Bole",
		CBECity:          "Addis Ababa",
		ModeOfFinance:    entity.FinanceConventional,

		CollectedBy: "u-collector-1",
	}
}

func TestGenerate_LibroConTresHojas(t *testing.T) {
	gen := excel.NewWorkbookGenerator()
	out, err := gen.Generate([]*entity.Applicant{
		sampleApplicant(1, "01A"),
		sampleApplicant(2, "01B"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err, "el binario debe ser un libro xlsx legible")
	defer f.Close()

	assert.Equal(t, []string{"Applicants", "Financials", "Guarantors"}, f.GetSheetList())
}

func TestGenerate_FilasEnlazadasPorNumeroEID(t *testing.T) {
	gen := excel.NewWorkbookGenerator()
	out, err := gen.Generate([]*entity.Applicant{sampleApplicant(1, "01A")})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	// Las tres hojas comparten No. e ID en las dos primeras columnas.
	for _, sheet := range []string{"Applicants", "Financials", "Guarantors"} {
		num, err := f.GetCellValue(sheet, "A2")
		require.NoError(t, err)
		id, err := f.GetCellValue(sheet, "B2")
		require.NoError(t, err)
		assert.Equal(t, "1", num, "hoja %s", sheet)
		assert.Equal(t, "01A", id, "hoja %s", sheet)
	}
}

func TestGenerate_ContenidoDeCeldas(t *testing.T) {
	gen := excel.NewWorkbookGenerator()
	out, err := gen.Generate([]*entity.Applicant{sampleApplicant(1, "01A")})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	cases := []struct {
		sheet, cell, want string
	}{
		{"Applicants", "A1", "No."},
		{"Applicants", "H1", "First Name"},
		{"Applicants", "H2", "Abebe"},
		{"Applicants", "K2", "1990-05-12"},
		{"Applicants", "O2", "yes"},
		{"Applicants", "T2", "2021-03-15"},
		{"Financials", "E2", "5"}, // empleados totales: 3 + 2
		{"Financials", "F2", "150000"},
		{"Guarantors", "C2", "Marta"},
		{"Guarantors", "G2", "18000"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue(tc.sheet, tc.cell)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s!%s", tc.sheet, tc.cell)
	}
}

func TestGenerate_SinLicencia_FechaVacia(t *testing.T) {
	a := sampleApplicant(1, "01A")
	a.HasBusinessLicense = false
	a.DateOfBusinessLicense = nil

	gen := excel.NewWorkbookGenerator()
	out, err := gen.Generate([]*entity.Applicant{a})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	hasLicense, err := f.GetCellValue("Applicants", "O2")
	require.NoError(t, err)
	licenseDate, err := f.GetCellValue("Applicants", "T2")
	require.NoError(t, err)
	assert.Equal(t, "no", hasLicense)
	assert.Empty(t, licenseDate)
}

func TestGenerate_SinRegistros_SoloEncabezados(t *testing.T) {
	gen := excel.NewWorkbookGenerator()
	out, err := gen.Generate(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Applicants")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "un libro vacío conserva la fila de encabezados")
}
