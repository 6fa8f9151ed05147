package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edi-platform/loan-intake-api/internal/application/export"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler maneja las descargas binarias (solo admin).
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler de exportación.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Workbook godoc
// @Summary      Exportar libro Excel (admin)
// @Description  Conjunto completo de registros en tres hojas; los registros sin
// @Description  auto_number reciben numeración secuencial por orden de listado.
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/exports/applicants.xlsx [get]
func (h *ExportHandler) Workbook(c *fiber.Ctx) error {
	data, err := h.uc.Workbook(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.WorkbookFilename+`"`)
	return c.Send(data)
}

// ApplicantForm godoc
// @Summary      Formulario imprimible de una solicitud (admin)
// @Tags         exports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path      string  true  "ULID del registro"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exports/applicants/{id}/form.pdf [get]
func (h *ExportHandler) ApplicantForm(c *fiber.Ctx) error {
	data, err := h.uc.ApplicantForm(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="application_`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
