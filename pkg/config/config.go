package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Supabase SupabaseConfig
	Local    LocalConfig
	Admin    AdminConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// SupabaseConfig credenciales del backend remoto (API de tablas PostgREST).
// AnonKey es la credencial restringida (operaciones del propietario de la fila);
// ServiceRoleKey es la credencial elevada, opcional, requerida para operaciones
// de administración (crear usuarios, listar todo, actualizar registros ajenos).
type SupabaseConfig struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
	TimeoutSeconds int
}

// Enabled indica si el backend remoto está configurado. Es el único interruptor
// de backend del sistema: si falta URL o AnonKey todo el proceso usa el backend
// local de archivos JSONL. La selección ocurre una vez al arrancar y nunca se mezcla.
func (c SupabaseConfig) Enabled() bool {
	return c.URL != "" && c.AnonKey != ""
}

// Elevated indica si la credencial service-role está disponible.
func (c SupabaseConfig) Elevated() bool {
	return c.ServiceRoleKey != ""
}

// LocalConfig configuración del backend local de archivos JSONL.
type LocalConfig struct {
	DataDir string // directorio de users.jsonl y applicants.jsonl
}

// AdminConfig lista blanca de administradores por email.
type AdminConfig struct {
	Emails []string // ya normalizados a minúsculas
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SUPABASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "loan-intake-api"),
		},
		Supabase: SupabaseConfig{
			URL:            getString(v, "SUPABASE_URL", ""),
			AnonKey:        getString(v, "SUPABASE_ANON_KEY", ""),
			ServiceRoleKey: getString(v, "SUPABASE_SERVICE_ROLE_KEY", ""),
			TimeoutSeconds: getInt(v, "SUPABASE_TIMEOUT_SECONDS", 15),
		},
		Local: LocalConfig{
			DataDir: getString(v, "DATA_DIR", "data"),
		},
		Admin: AdminConfig{
			Emails: splitEmails(getString(v, "APP_ADMIN_EMAILS", "")),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "loan-intake-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

// splitEmails parsea la lista separada por comas y normaliza a minúsculas,
// descartando entradas vacías.
func splitEmails(raw string) []string {
	var out []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
