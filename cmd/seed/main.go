// seed crea un usuario inicial contra el backend activo (remoto o local según
// la configuración). Un despliegue nuevo no tiene forma de autenticarse hasta
// que existe el primer admin; esta herramienta es ese camino de arranque.
//
// Uso: go run ./cmd/seed -email admin@example.org -password secreta -role admin
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/edi-platform/loan-intake-api/internal/domain/entity"
	"github.com/edi-platform/loan-intake-api/internal/domain/repository"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/jsonl"
	"github.com/edi-platform/loan-intake-api/internal/infrastructure/supabase"
	"github.com/edi-platform/loan-intake-api/pkg/config"
	"github.com/edi-platform/loan-intake-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del usuario (obligatorio)")
	password := flag.String("password", "", "password en claro, mínimo 6 caracteres (obligatorio)")
	role := flag.String("role", entity.RoleAdmin, "rol: collector o admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *email == "" || *password == "" {
		log.Error().Msg("email y password son obligatorios")
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 6 {
		log.Fatal().Msg("el password debe tener al menos 6 caracteres")
	}
	if !entity.ValidRole(*role) {
		log.Fatal().Str("role", *role).Msg("rol inválido: debe ser collector o admin")
	}

	var users repository.UserRepository
	if cfg.Supabase.Enabled() {
		users = supabase.NewUserRepository(supabase.NewClient(cfg.Supabase))
		log.Info().Str("backend", "supabase").Msg("creando usuario en el backend remoto")
	} else {
		if err := jsonl.EnsureDataDir(cfg.Local.DataDir); err != nil {
			log.Fatal().Err(err).Msg("preparar directorio de datos")
		}
		users = jsonl.NewUserRepository(cfg.Local.DataDir)
		log.Info().Str("backend", "jsonl").Str("data_dir", cfg.Local.DataDir).Msg("creando usuario en el backend local")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: string(hash),
		Role:         *role,
	}
	if err := users.Create(context.Background(), user); err != nil {
		log.Fatal().Err(err).Str("email", user.Email).Msg("crear usuario")
	}
	log.Info().Str("id", user.ID).Str("email", user.Email).Str("role", user.Role).Msg("usuario creado")
}
