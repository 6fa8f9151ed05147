package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/edi-platform/loan-intake-api/internal/application/dto"
	"github.com/edi-platform/loan-intake-api/internal/domain"
)

// errorResponse mapea la taxonomía de errores de dominio a códigos HTTP.
//
//	ValidationError      → 400 con la lista completa de violaciones
//	ErrInvalidCredentials→ 401 genérico (sin distinguir usuario/password)
//	ErrForbidden         → 403, operación abortada sin efectos
//	ErrNotFound          → 404
//	ErrEmailAlreadyExists→ 409
//	Persistencia         → 502: fallida para el llamador, el proceso sigue vivo
func errorResponse(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:       "VALIDATION",
			Message:    verr.Error(),
			Violations: verr.Violations,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo administradores"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrPasswordMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_MISMATCH", Message: "las contraseñas no coinciden"})
	case errors.Is(err, domain.ErrPasswordTooShort):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_TOO_SHORT", Message: "la contraseña es demasiado corta"})
	case errors.Is(err, domain.ErrElevatedKeyRequired):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ELEVATED_KEY_REQUIRED", Message: "la operación requiere la credencial elevada del backend"})
	case errors.Is(err, domain.ErrNothingPersisted), errors.Is(err, domain.ErrPersistence):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: "el backend no completó la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
