// Package excel genera el libro de exportación (EDI_export.xlsx) con excelize.
//
// El libro reparte el registro plano en tres hojas enlazadas por No. e ID:
//
//	Applicants  — ubicación, identidad, licencia y clasificación del negocio
//	Financials  — personal, cifras financieras y datos bancarios
//	Guarantors  — identidad e ingreso del garante
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/edi-platform/loan-intake-api/internal/application/export"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
)

var _ export.SpreadsheetGenerator = (*WorkbookGenerator)(nil)

const (
	sheetApplicants = "Applicants"
	sheetFinancials = "Financials"
	sheetGuarantors = "Guarantors"
)

// WorkbookGenerator implementa export.SpreadsheetGenerator usando excelize.
type WorkbookGenerator struct{}

// NewWorkbookGenerator construye el generador.
func NewWorkbookGenerator() *WorkbookGenerator { return &WorkbookGenerator{} }

// Generate produce el libro completo en memoria. Las filas llegan con su
// auto_number ya resuelto por el caso de uso.
func (g *WorkbookGenerator) Generate(applicants []*entity.Applicant) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// La hoja por defecto pasa a ser la primera del libro.
	if err := f.SetSheetName("Sheet1", sheetApplicants); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	for _, name := range []string{sheetFinancials, sheetGuarantors} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("crear hoja %s: %w", name, err)
		}
	}

	if err := writeSheet(f, sheetApplicants, applicantHeaders, applicants, applicantRow); err != nil {
		return nil, err
	}
	if err := writeSheet(f, sheetFinancials, financialHeaders, applicants, financialRow); err != nil {
		return nil, err
	}
	if err := writeSheet(f, sheetGuarantors, guarantorHeaders, applicants, guarantorRow); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, applicants []*entity.Applicant, rowOf func(*entity.Applicant) []interface{}) error {
	head := make([]interface{}, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("encabezado de %s: %w", sheet, err)
	}
	for i, a := range applicants {
		row := rowOf(a)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("fila %d de %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

var applicantHeaders = []string{
	"No.", "ID", "Region", "Batch", "Zone", "Woreda", "Kebele",
	"First Name", "Father Name", "Grandfather Name", "Date of Birth", "Date Collected", "Sex", "Applicant Address",
	"Business License", "Trade License No.", "Trade", "Registration No.", "TIN No.", "License Date",
	"Enterprise Category", "Ownership Form", "Business Sector", "No. of Owners", "Owners Names",
	"Registered Address", "Business Premise", "Collected By",
}

func applicantRow(a *entity.Applicant) []interface{} {
	return []interface{}{
		a.AutoNumber, a.ID, a.Region, a.Batch, a.Zone, a.Woreda, a.Kebele,
		a.FirstName, a.FatherName, a.GrandfatherName, a.DateOfBirth.String(), a.DateCollected.String(), a.Sex, a.ApplicantAddress,
		yesNo(a.HasBusinessLicense), a.TradeLicenseNumber, a.Trade, a.RegistrationNumber, a.TINNumber, licenseDate(a),
		a.EnterpriseCategory, a.OwnershipForm, a.BusinessSector, a.NumberOfOwners, a.OwnersNames,
		a.RegisteredAddress, a.BusinessPremise, a.CollectedBy,
	}
}

var financialHeaders = []string{
	"No.", "ID", "Male Employees", "Female Employees", "Total Employees",
	"Business Capital (ETB)", "Monthly Revenue (ETB)", "Annual Revenue Last 3y (ETB)", "Net Profit Last 3y (ETB)",
	"Financing Required (ETB)", "Source of Repayment", "Purpose of Funds",
	"Credit History", "CBE Account No.", "CBE Branch", "CBE City", "Mode of Finance",
}

func financialRow(a *entity.Applicant) []interface{} {
	return []interface{}{
		a.AutoNumber, a.ID, a.MaleEmployees, a.FemaleEmployees, a.TotalEmployees(),
		a.BusinessCapitalETB.InexactFloat64(), a.MonthlyRevenueETB.InexactFloat64(),
		a.AnnualRevenueLast3.InexactFloat64(), a.NetProfitLast3.InexactFloat64(),
		a.FinancingRequiredETB.InexactFloat64(), a.SourceOfRepayment, a.PurposeOfFunds,
		a.CreditHistory, a.CBEAccountNumber, a.CBEBranch, a.CBECity, a.ModeOfFinance,
	}
}

var guarantorHeaders = []string{
	"No.", "ID", "Guarantor First Name", "Guarantor Father Name", "Guarantor Grandfather Name",
	"Guarantor Phone", "Guarantor Monthly Income (ETB)",
}

func guarantorRow(a *entity.Applicant) []interface{} {
	return []interface{}{
		a.AutoNumber, a.ID, a.GuarantorFirstName, a.GuarantorFatherName, a.GuarantorGrandfatherName,
		a.GuarantorPhone, a.GuarantorMonthlyIncome.InexactFloat64(),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func licenseDate(a *entity.Applicant) string {
	if a.DateOfBusinessLicense == nil {
		return ""
	}
	return a.DateOfBusinessLicense.String()
}
