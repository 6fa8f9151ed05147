// Package pdf implementa la generación del formulario imprimible de una
// solicitud de crédito (vista de administración).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Institución + título  │  ID + Fecha de captura      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITANTE: nombre, nacimiento, sexo, dirección, ubicación │
//	│  NEGOCIO: licencia, clasificación, propietarios, local       │
//	│  FINANZAS: personal, capital, ingresos, financiamiento       │
//	│  GARANTE Y BANCO: garante, cuenta CBE, modo de financiamiento│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/edi-platform/loan-intake-api/internal/application/export"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
)

var _ export.FormGenerator = (*MarotoFormGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFormGenerator implementa export.FormGenerator usando Maroto v2.
type MarotoFormGenerator struct{}

// NewMarotoFormGenerator construye el generador.
func NewMarotoFormGenerator() *MarotoFormGenerator { return &MarotoFormGenerator{} }

// GenerateApplicantForm genera el PDF del formulario y devuelve sus bytes.
func (g *MarotoFormGenerator) GenerateApplicantForm(_ context.Context, a *entity.Applicant) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("EDI Loan Application Form", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("APPLICANT"))
	m.AddRows(
		fieldRow("Full name", a.FullName(), "Sex", sexLabel(a.Sex)),
		fieldRow("Date of birth", a.DateOfBirth.String(), "Address", a.ApplicantAddress),
		fieldRow("Region / Zone", a.Region+" / "+a.Zone, "Woreda / Kebele", a.Woreda+" / "+a.Kebele),
		fieldRow("Batch", a.Batch, "Collected by", a.CollectedBy),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("BUSINESS"))
	m.AddRows(
		fieldRow("Business license", licenseSummary(a), "License date", licenseDateLabel(a)),
		fieldRow("Trade", a.Trade, "TIN No.", a.TINNumber),
		fieldRow("Category", a.EnterpriseCategory, "Ownership", a.OwnershipForm),
		fieldRow("Sector", a.BusinessSector, "Premise", a.BusinessPremise),
		fieldRow("Owners", fmt.Sprintf("%d — %s", a.NumberOfOwners, a.OwnersNames), "Registered address", a.RegisteredAddress),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("FINANCIALS"))
	m.AddRows(
		fieldRow("Employees (M/F)", fmt.Sprintf("%d / %d", a.MaleEmployees, a.FemaleEmployees),
			"Business capital", etb(a.BusinessCapitalETB.StringFixed(2))),
		fieldRow("Monthly revenue", etb(a.MonthlyRevenueETB.StringFixed(2)),
			"Annual revenue (3y)", etb(a.AnnualRevenueLast3.StringFixed(2))),
		fieldRow("Net profit (3y)", etb(a.NetProfitLast3.StringFixed(2)),
			"Financing required", etb(a.FinancingRequiredETB.StringFixed(2))),
		fieldRow("Source of repayment", a.SourceOfRepayment, "Purpose of funds", a.PurposeOfFunds),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("GUARANTOR & BANKING"))
	m.AddRows(
		fieldRow("Guarantor", a.GuarantorFirstName+" "+a.GuarantorFatherName+" "+a.GuarantorGrandfatherName,
			"Guarantor phone", a.GuarantorPhone),
		fieldRow("Guarantor income", etb(a.GuarantorMonthlyIncome.StringFixed(2)),
			"Credit history", a.CreditHistory),
		fieldRow("CBE account", a.CBEAccountNumber, "Branch / City", a.CBEBranch+" / "+a.CBECity),
		fieldRow("Mode of finance", a.ModeOfFinance, "", ""),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: institución + título (izq) e identificador + fecha de captura (der).
func headerRow(a *entity.Applicant) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Entrepreneur Development Institution", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Loan Application Form", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("APPLICATION", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(a.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Collected: "+a.DateCollected.String(), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// sectionTitleRow: título de sección en el color primario.
func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})),
	)
}

// fieldRow: dos pares etiqueta/valor por fila.
func fieldRow(label1, value1, label2, value2 string) core.Row {
	pair := func(label, value string) []core.Component {
		if label == "" {
			return nil
		}
		return []core.Component{
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(nonEmpty(value, "—"), props.Text{Size: 9, Top: 4}),
		}
	}
	return row.New(9).Add(
		col.New(6).Add(pair(label1, value1)...),
		col.New(6).Add(pair(label2, value2)...),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func sexLabel(s string) string {
	switch s {
	case entity.SexMale:
		return "male"
	case entity.SexFemale:
		return "female"
	}
	return s
}

func licenseSummary(a *entity.Applicant) string {
	if !a.HasBusinessLicense {
		return "no"
	}
	if a.TradeLicenseNumber != "" {
		return "yes — " + a.TradeLicenseNumber
	}
	return "yes"
}

func licenseDateLabel(a *entity.Applicant) string {
	if a.DateOfBusinessLicense == nil {
		return ""
	}
	return a.DateOfBusinessLicense.String()
}

func etb(v string) string { return v + " ETB" }

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
