package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/edi-platform/loan-intake-api/docs"
	"github.com/edi-platform/loan-intake-api/internal/application/auth"
	"github.com/edi-platform/loan-intake-api/internal/application/export"
	"github.com/edi-platform/loan-intake-api/internal/application/intake"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/excel"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/jsonl"
	infrapdf "github.com/edi-platform/loan-intake-api/internal/infrastructure/pdf"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/supabase"
	httpRouter "github.com/edi-platform/loan-intake-api/internal/interfaces/http"
	"github.com/edi-platform/loan-intake-api/pkg/config"
	"github.com/edi-platform/loan-intake-api/pkg/logger"
	"github.com/edi-platform/loan-intake-api/pkg/ulid"
)

// @title        EDI Loan Intake API
// @version      1.0
// @description  Captura, validación y administración de solicitudes de crédito.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Selección de backend: una sola vez al arrancar, nunca se mezcla. La
	// presencia de URL + anon key decide remoto; su ausencia, archivos locales.
	var (
		userRepo      repository.UserRepository
		applicantRepo repository.ApplicantRepository
	)
	if cfg.Supabase.Enabled() {
		client := supabase.NewClient(cfg.Supabase)
		userRepo = supabase.NewUserRepository(client)
		applicantRepo = supabase.NewApplicantRepository(client)
		log.Info().
			Str("backend", "supabase").
			Bool("elevated_key", cfg.Supabase.Elevated()).
			Msg("backend remoto activo")
	} else {
		if err := jsonl.EnsureDataDir(cfg.Local.DataDir); err != nil {
			log.Fatal().Err(err).Msg("preparar directorio de datos")
		}
		userRepo = jsonl.NewUserRepository(cfg.Local.DataDir)
		applicantRepo = jsonl.NewApplicantRepository(cfg.Local.DataDir)
		log.Info().
			Str("backend", "jsonl").
			Str("data_dir", cfg.Local.DataDir).
			Msg("backend local activo")
	}

	admins := auth.NewAdminList(cfg.Admin.Emails)
	authSvc := auth.NewService(userRepo, admins, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	intakeUC := intake.NewUseCase(applicantRepo, ulid.NewGenerator())
	exportUC := export.NewUseCase(applicantRepo, excel.NewWorkbookGenerator(), infrapdf.NewMarotoFormGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EDI Loan Intake API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthService: authSvc,
		IntakeUC:    intakeUC,
		ExportUC:    exportUC,
		Admins:      admins,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
