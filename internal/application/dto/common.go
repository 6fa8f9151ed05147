package dto

import "github.com/edi-platform/loan-intake-api/internal/domain"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error para rechazos de esquema: incluye la
// lista COMPLETA de violaciones para que el llamador corrija todo en una sola pasada.
type ValidationErrorResponse struct {
	Code       string                  `json:"code"`
	Message    string                  `json:"message"`
	Violations []domain.FieldViolation `json:"violations"`
}
