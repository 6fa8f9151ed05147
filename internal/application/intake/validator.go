// Package intake implementa la captura de solicitantes: validación de esquema
// todo-o-nada, normalización a registro tipado y persistencia en el backend activo.
package intake

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/edi-platform/loan-intake-api/internal/application/dto"
	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
)

// Validator valida un registro candidato contra el esquema fijo y lo normaliza
// al registro tipado entity.Applicant. Es un chequeo puro: sin efectos laterales.
//
// La validación es todo-o-nada: una sola violación rechaza el envío completo y
// el error (*domain.ValidationError) lista TODAS las violaciones, nombrando cada
// campo por su clave JSON, para que el llamador corrija todo en una sola pasada.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador de esquema.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Las violaciones nombran el campo por su tag json, tal como lo envió el llamador.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Los montos decimal.Decimal se comparan numéricamente para gte=0.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &Validator{v: v}
}

// Normalize valida el registro candidato y devuelve el registro tipado con los
// valores preservados. El texto libre se limpia (espacios y forma Unicode NFC)
// ANTES de validar, de modo que un campo de solo espacios falla required.
func (val *Validator) Normalize(in dto.SubmitApplicantRequest) (*entity.Applicant, error) {
	cleanRequest(&in)

	if err := val.v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, toValidationError(verrs)
		}
		return nil, err
	}

	// Los formatos de fecha ya están validados (datetime=2006-01-02).
	dob, err := entity.ParseDate(in.DateOfBirth)
	if err != nil {
		return nil, err
	}
	collected, err := entity.ParseDate(in.DateCollected)
	if err != nil {
		return nil, err
	}
	var licenseDate *entity.Date
	if in.HasBusinessLicense && in.DateOfBusinessLicense != "" {
		d, err := entity.ParseDate(in.DateOfBusinessLicense)
		if err != nil {
			return nil, err
		}
		licenseDate = &d
	}

	return &entity.Applicant{
		Region: in.Region,
		Batch:  in.Batch,
		Zone:   in.Zone,
		Woreda: in.Woreda,
		Kebele: in.Kebele,

		FirstName:        in.FirstName,
		FatherName:       in.FatherName,
		GrandfatherName:  in.GrandfatherName,
		DateOfBirth:      dob,
		DateCollected:    collected,
		Sex:              in.Sex,
		ApplicantAddress: in.ApplicantAddress,

		HasBusinessLicense:    in.HasBusinessLicense,
		TradeLicenseNumber:    in.TradeLicenseNumber,
		Trade:                 in.Trade,
		RegistrationNumber:    in.RegistrationNumber,
		TINNumber:             in.TINNumber,
		DateOfBusinessLicense: licenseDate,

		EnterpriseCategory: in.EnterpriseCategory,
		OwnershipForm:      in.OwnershipForm,
		BusinessSector:     in.BusinessSector,
		NumberOfOwners:     in.NumberOfOwners,
		OwnersNames:        in.OwnersNames,
		RegisteredAddress:  in.RegisteredAddress,
		BusinessPremise:    in.BusinessPremise,

		MaleEmployees:        in.MaleEmployees,
		FemaleEmployees:      in.FemaleEmployees,
		BusinessCapitalETB:   in.BusinessCapitalETB,
		MonthlyRevenueETB:    in.MonthlyRevenueETB,
		AnnualRevenueLast3:   in.AnnualRevenueLast3,
		NetProfitLast3:       in.NetProfitLast3,
		FinancingRequiredETB: in.FinancingRequiredETB,
		SourceOfRepayment:    in.SourceOfRepayment,
		PurposeOfFunds:       in.PurposeOfFunds,

		GuarantorFirstName:       in.GuarantorFirstName,
		GuarantorFatherName:      in.GuarantorFatherName,
		GuarantorGrandfatherName: in.GuarantorGrandfatherName,
		GuarantorPhone:           in.GuarantorPhone,
		GuarantorMonthlyIncome:   in.GuarantorMonthlyIncome,

		CreditHistory:    in.CreditHistory,
		CBEAccountNumber: in.CBEAccountNumber,
		CBEBranch:        in.CBEBranch,
		CBECity:          in.CBECity,
		ModeOfFinance:    in.ModeOfFinance,
	}, nil
}

// cleanText recorta espacios y normaliza a forma Unicode NFC. Los nombres
// etíopes transliterados pueden llegar con secuencias combinantes distintas
// según el teclado; NFC fija una representación única antes de persistir.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// cleanRequest limpia en sitio todos los campos de texto libre del candidato.
// Los campos de conjunto cerrado y las fechas solo se recortan: la comparación
// oneof es case-sensitive y exacta.
func cleanRequest(in *dto.SubmitApplicantRequest) {
	free := []*string{
		&in.Region, &in.Batch, &in.Zone, &in.Woreda, &in.Kebele,
		&in.FirstName, &in.FatherName, &in.GrandfatherName, &in.ApplicantAddress,
		&in.TradeLicenseNumber, &in.Trade, &in.RegistrationNumber, &in.TINNumber,
		&in.OwnersNames, &in.RegisteredAddress,
		&in.SourceOfRepayment, &in.PurposeOfFunds,
		&in.GuarantorFirstName, &in.GuarantorFatherName, &in.GuarantorGrandfatherName,
		&in.GuarantorPhone,
		&in.CreditHistory, &in.CBEAccountNumber, &in.CBEBranch, &in.CBECity,
	}
	for _, f := range free {
		*f = cleanText(*f)
	}
	exact := []*string{
		&in.DateOfBirth, &in.DateCollected, &in.DateOfBusinessLicense,
		&in.Sex, &in.EnterpriseCategory, &in.OwnershipForm, &in.BusinessSector,
		&in.BusinessPremise, &in.ModeOfFinance,
	}
	for _, f := range exact {
		*f = strings.TrimSpace(*f)
	}
}

// toValidationError traduce los errores del validador a la taxonomía de dominio,
// preservando la lista completa de violaciones.
func toValidationError(verrs validator.ValidationErrors) *domain.ValidationError {
	out := &domain.ValidationError{Violations: make([]domain.FieldViolation, 0, len(verrs))}
	for _, e := range verrs {
		constraint := e.Tag()
		if e.Param() != "" {
			constraint += "=" + e.Param()
		}
		out.Violations = append(out.Violations, domain.FieldViolation{
			Field:      e.Field(),
			Constraint: constraint,
		})
	}
	return out
}
