package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edi-platform/loan-intake-api/internal/application/dto"
	"github.com/edi-platform/loan-intake-api/internal/application/intake"
)

// ApplicantHandler maneja la captura y consulta de solicitantes.
type ApplicantHandler struct {
	uc *intake.UseCase
}

// NewApplicantHandler construye el handler de solicitantes.
func NewApplicantHandler(uc *intake.UseCase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

// Submit godoc
// @Summary      Registrar solicitante (collector o admin)
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitApplicantRequest  true  "registro candidato completo"
// @Success      201   {object}  entity.Applicant
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/applicants [post]
func (h *ApplicantHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitApplicantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	applicant, err := h.uc.Submit(c.Context(), CallerIdentity(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(applicant)
}

// List godoc
// @Summary      Listar solicitantes (admin)
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Applicant
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/applicants [get]
func (h *ApplicantHandler) List(c *fiber.Ctx) error {
	applicants, err := h.uc.List(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(applicants)
}

// GetByID godoc
// @Summary      Consultar solicitante (admin)
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ULID del registro"
// @Success      200  {object}  entity.Applicant
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/applicants/{id} [get]
func (h *ApplicantHandler) GetByID(c *fiber.Ctx) error {
	applicant, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(applicant)
}

// UpdateCreditHistory godoc
// @Summary      Corregir historial crediticio (admin)
// @Description  credit_history es el único campo mutable después de la creación.
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ULID del registro"
// @Param        body  body  dto.UpdateCreditHistoryRequest  true  "nuevo valor"
// @Success      200   {object}  entity.Applicant
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/applicants/{id}/credit-history [patch]
func (h *ApplicantHandler) UpdateCreditHistory(c *fiber.Ctx) error {
	var in dto.UpdateCreditHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CreditHistory == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "credit_history es requerido"})
	}
	applicant, err := h.uc.UpdateCreditHistory(c.Context(), c.Params("id"), in.CreditHistory)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(applicant)
}
