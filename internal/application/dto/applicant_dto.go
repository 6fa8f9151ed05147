package dto

import "github.com/shopspring/decimal"

// SubmitApplicantRequest es el registro candidato tal como lo envía el collector:
// un mapeo plano de nombre de campo a valor crudo. Los tags validate definen el
// esquema completo; la validación es todo-o-nada y reporta todas las violaciones
// juntas (ver intake.Validator).
//
// Las fechas llegan como strings "YYYY-MM-DD" y se tipan en la normalización.
// Los conjuntos cerrados (oneof) son case-sensitive.
type SubmitApplicantRequest struct {
	// Ubicación administrativa.
	Region string `json:"region" validate:"required"`
	Batch  string `json:"batch" validate:"required"`
	Zone   string `json:"zone" validate:"required"`
	Woreda string `json:"woreda" validate:"required"`
	Kebele string `json:"kebele" validate:"required"`

	// Identidad.
	FirstName        string `json:"first_name" validate:"required"`
	FatherName       string `json:"father_name" validate:"required"`
	GrandfatherName  string `json:"grandfather_name" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	DateCollected    string `json:"date_collected" validate:"required,datetime=2006-01-02"`
	Sex              string `json:"sex" validate:"required,oneof=m f"`
	ApplicantAddress string `json:"applicant_address" validate:"required"`

	// Licencia comercial. Los detalles son opcionales, pero la fecha de registro
	// es estructuralmente obligatoria cuando hay licencia.
	HasBusinessLicense    bool   `json:"has_business_license"`
	TradeLicenseNumber    string `json:"trade_license_number" validate:"omitempty"`
	Trade                 string `json:"trade" validate:"omitempty"`
	RegistrationNumber    string `json:"registration_number" validate:"omitempty"`
	TINNumber             string `json:"tin_number" validate:"omitempty"`
	DateOfBusinessLicense string `json:"date_of_business_license" validate:"required_if=HasBusinessLicense true,omitempty,datetime=2006-01-02"`

	// Clasificación del negocio.
	EnterpriseCategory string `json:"enterprise_category" validate:"required,oneof=micro small medium startup"`
	OwnershipForm      string `json:"ownership_form" validate:"required,oneof=soleproprietorship partnership plc"`
	BusinessSector     string `json:"business_sector" validate:"required,oneof=manufacturing construction agriculture mining service others"`
	NumberOfOwners     int    `json:"number_of_owners" validate:"gte=1"`
	OwnersNames        string `json:"owners_names" validate:"required"`
	RegisteredAddress  string `json:"registered_address" validate:"required"`
	BusinessPremise    string `json:"business_premise" validate:"required,oneof=rented applicant_owned government"`

	// Personal y cifras financieras (ETB). Todas no negativas.
	MaleEmployees        int             `json:"male_employees" validate:"gte=0"`
	FemaleEmployees      int             `json:"female_employees" validate:"gte=0"`
	BusinessCapitalETB   decimal.Decimal `json:"business_capital_etb" validate:"gte=0"`
	MonthlyRevenueETB    decimal.Decimal `json:"monthly_revenue_etb" validate:"gte=0"`
	AnnualRevenueLast3   decimal.Decimal `json:"annual_revenue_last3" validate:"gte=0"`
	NetProfitLast3       decimal.Decimal `json:"net_profit_last3" validate:"gte=0"`
	FinancingRequiredETB decimal.Decimal `json:"financing_required_etb" validate:"gte=0"`
	SourceOfRepayment    string          `json:"source_of_repayment" validate:"required"`
	PurposeOfFunds       string          `json:"purpose_of_funds" validate:"required"`

	// Garante.
	GuarantorFirstName       string          `json:"guarantor_first_name" validate:"required"`
	GuarantorFatherName      string          `json:"guarantor_father_name" validate:"required"`
	GuarantorGrandfatherName string          `json:"guarantor_grandfather_name" validate:"required"`
	GuarantorPhone           string          `json:"guarantor_phone" validate:"required"`
	GuarantorMonthlyIncome   decimal.Decimal `json:"guarantor_monthly_income" validate:"gte=0"`

	// Información bancaria.
	CreditHistory    string `json:"credit_history" validate:"required"`
	CBEAccountNumber string `json:"cbe_account_number" validate:"required"`
	CBEBranch        string `json:"cbe_branch" validate:"required"`
	CBECity          string `json:"cbe_city" validate:"required"`
	ModeOfFinance    string `json:"mode_of_finance" validate:"required,oneof=conventional ifb"`
}

// UpdateCreditHistoryRequest entrada para corregir el único campo mutable.
type UpdateCreditHistoryRequest struct {
	CreditHistory string `json:"credit_history" validate:"required"`
}
