package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edi-platform/loan-intake-api/internal/application/auth"
	"github.com/edi-platform/loan-intake-api/internal/application/export"
	"github.com/edi-platform/loan-intake-api/internal/application/intake"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthService *auth.Service
	IntakeUC    *intake.UseCase
	ExportUC    *export.UseCase
	Admins      auth.AdminList
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Gating por rol: login es público; el alta de solicitantes la puede hacer
// cualquier usuario autenticado (collector o admin); consulta, corrección,
// usuarios y exportación son solo de administración (rol admin o lista blanca).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthService)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	applicantHandler := NewApplicantHandler(deps.IntakeUC)
	protected.Post("/applicants", applicantHandler.Submit)

	// Operaciones de administración
	admin := protected.Group("/", RequireAdmin(deps.Admins))
	admin.Get("/applicants", applicantHandler.List)
	admin.Get("/applicants/:id", applicantHandler.GetByID)
	admin.Patch("/applicants/:id/credit-history", applicantHandler.UpdateCreditHistory)

	userHandler := NewUserHandler(deps.AuthService)
	admin.Post("/users", userHandler.Create)
	admin.Get("/users", userHandler.List)

	exportHandler := NewExportHandler(deps.ExportUC)
	admin.Get("/exports/applicants.xlsx", exportHandler.Workbook)
	admin.Get("/exports/applicants/:id/form.pdf", exportHandler.ApplicantForm)
}
