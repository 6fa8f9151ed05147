package entity

import "github.com/shopspring/decimal"

func init() {
	// Ambos backends y el archivo JSONL esperan montos como números JSON planos
	// (50000.0), no como strings. Se fija aquí porque este paquete define la
	// representación canónica del registro.
	decimal.MarshalJSONWithoutQuotes = true
}

// Conjuntos cerrados del registro de solicitante. Los literales provienen del
// formulario de captura y son case-sensitive: la validación no acepta variantes.
const (
	SexMale   = "m"
	SexFemale = "f"
)

// Categorías de empresa.
const (
	CategoryMicro   = "micro"
	CategorySmall   = "small"
	CategoryMedium  = "medium"
	CategoryStartup = "startup"
)

// Formas de propiedad.
const (
	OwnershipSoleProprietorship = "soleproprietorship"
	OwnershipPartnership        = "partnership"
	OwnershipPLC                = "plc"
)

// Sectores de negocio.
const (
	SectorManufacturing = "manufacturing"
	SectorConstruction  = "construction"
	SectorAgriculture   = "agriculture"
	SectorMining        = "mining"
	SectorService       = "service"
	SectorOthers        = "others"
)

// Local del negocio.
const (
	PremiseRented         = "rented"
	PremiseApplicantOwned = "applicant_owned"
	PremiseGovernment     = "government"
)

// Modalidades de financiamiento.
const (
	FinanceConventional = "conventional"
	FinanceIFB          = "ifb" // interest-free banking
)

// Applicant es el registro plano de un solicitante de crédito, tal como lo captura
// un collector en campo. Es inmutable después de creado salvo CreditHistory, el
// único campo que el flujo de administración corrige a posteriori.
//
// Los tags json definen la forma canónica del registro: son las columnas de la
// tabla remota `applicants` y las claves de cada línea de applicants.jsonl.
type Applicant struct {
	ID string `json:"id"` // ULID: único y ordenable lexicográficamente por creación

	// AutoNumber lo asigna el backend remoto (columna identity). En el backend
	// local queda en cero y la exportación lo completa 1..N según el orden de listado.
	AutoNumber int64 `json:"auto_number,omitempty"`

	// Ubicación administrativa de la captura.
	Region string `json:"region"`
	Batch  string `json:"batch"`
	Zone   string `json:"zone"`
	Woreda string `json:"woreda"`
	Kebele string `json:"kebele"`

	// Identidad del solicitante.
	FirstName        string `json:"first_name"`
	FatherName       string `json:"father_name"`
	GrandfatherName  string `json:"grandfather_name"`
	DateOfBirth      Date   `json:"date_of_birth"`
	DateCollected    Date   `json:"date_collected"`
	Sex              string `json:"sex"` // m | f
	ApplicantAddress string `json:"applicant_address"`

	// Licencia comercial. Los campos de detalle son opcionales, pero la fecha de
	// registro es obligatoria cuando HasBusinessLicense es verdadero.
	HasBusinessLicense    bool   `json:"has_business_license"`
	TradeLicenseNumber    string `json:"trade_license_number,omitempty"`
	Trade                 string `json:"trade,omitempty"`
	RegistrationNumber    string `json:"registration_number,omitempty"`
	TINNumber             string `json:"tin_number,omitempty"`
	DateOfBusinessLicense *Date  `json:"date_of_business_license,omitempty"`

	// Clasificación del negocio.
	EnterpriseCategory string `json:"enterprise_category"` // micro | small | medium | startup
	OwnershipForm      string `json:"ownership_form"`      // soleproprietorship | partnership | plc
	BusinessSector     string `json:"business_sector"`     // manufacturing | construction | agriculture | mining | service | others
	NumberOfOwners     int    `json:"number_of_owners"`
	OwnersNames        string `json:"owners_names"`
	RegisteredAddress  string `json:"registered_address"`
	BusinessPremise    string `json:"business_premise"` // rented | applicant_owned | government

	// Personal y cifras financieras (en birr etíope, ETB). Todas no negativas.
	MaleEmployees        int             `json:"male_employees"`
	FemaleEmployees      int             `json:"female_employees"`
	BusinessCapitalETB   decimal.Decimal `json:"business_capital_etb"`
	MonthlyRevenueETB    decimal.Decimal `json:"monthly_revenue_etb"`
	AnnualRevenueLast3   decimal.Decimal `json:"annual_revenue_last3"`
	NetProfitLast3       decimal.Decimal `json:"net_profit_last3"`
	FinancingRequiredETB decimal.Decimal `json:"financing_required_etb"`
	SourceOfRepayment    string          `json:"source_of_repayment"`
	PurposeOfFunds       string          `json:"purpose_of_funds"`

	// Garante.
	GuarantorFirstName       string          `json:"guarantor_first_name"`
	GuarantorFatherName      string          `json:"guarantor_father_name"`
	GuarantorGrandfatherName string          `json:"guarantor_grandfather_name"`
	GuarantorPhone           string          `json:"guarantor_phone"`
	GuarantorMonthlyIncome   decimal.Decimal `json:"guarantor_monthly_income"`

	// Información bancaria.
	CreditHistory    string `json:"credit_history"` // único campo mutable post-creación
	CBEAccountNumber string `json:"cbe_account_number"`
	CBEBranch        string `json:"cbe_branch"`
	CBECity          string `json:"cbe_city"`
	ModeOfFinance    string `json:"mode_of_finance"` // conventional | ifb

	// CollectedBy referencia al usuario que registró la solicitud; se estampa en
	// la creación a partir de la identidad autenticada.
	CollectedBy string `json:"collected_by"`
}

// FullName devuelve el nombre compuesto al estilo etíope (nombre, padre, abuelo).
func (a *Applicant) FullName() string {
	return a.FirstName + " " + a.FatherName + " " + a.GrandfatherName
}

// TotalEmployees suma el personal masculino y femenino.
func (a *Applicant) TotalEmployees() int {
	return a.MaleEmployees + a.FemaleEmployees
}
