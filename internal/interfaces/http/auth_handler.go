package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edi-platform/loan-intake-api/internal/application/auth"
	"github.com/edi-platform/loan-intake-api/internal/application/dto"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.svc.Login(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
