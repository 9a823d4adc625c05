package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Modos de acceso a datos.
const (
	ModeREST = "rest" // backend real vía HTTP
	ModeMock = "mock" // datos locales en memoria/disco, sin backend
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App  AppConfig
	API  APIConfig
	AI   AIConfig
	Mock MockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	DataDir  string // directorio del almacenamiento local (sesión, datos mock)
	LogLevel string
}

// APIConfig configuración del backend REST.
type APIConfig struct {
	BaseURL string        // ej. http://localhost:5000/api
	Mode    string        // rest | mock
	Timeout time.Duration // timeout de red por petición
}

// AIConfig configuración del camino directo a Gemini.
// Solo lo consume el modo mock: el cliente REST de producción enruta los
// insights por el proxy del backend y nunca necesita esta clave.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration // presupuesto total del insight (llamada + fallback)
}

// MockConfig configuración del cliente mock.
type MockConfig struct {
	Latency time.Duration // latencia artificial por operación
}

// MockAllowed indica si el modo mock puede construirse en este entorno.
// El mock no valida credenciales, así que jamás debe llegar a producción.
func (c *Config) MockAllowed() bool {
	return c.App.Env != "production"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// API_URL, API_MODE, DATA_DIR, GEMINI_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "bizflow"),
			DataDir:  getString(v, "DATA_DIR", defaultDataDir()),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_URL", "http://localhost:5000/api"),
			Mode:    getString(v, "API_MODE", ModeREST),
			Timeout: time.Duration(getInt(v, "HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:      time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Mock: MockConfig{
			Latency: time.Duration(getInt(v, "MOCK_LATENCY_MS", 0)) * time.Millisecond,
		},
	}

	if cfg.API.Mode != ModeREST && cfg.API.Mode != ModeMock {
		return nil, fmt.Errorf("config: API_MODE inválido %q (esperado %q o %q)", cfg.API.Mode, ModeREST, ModeMock)
	}
	if cfg.API.Mode == ModeMock && !cfg.MockAllowed() {
		return nil, fmt.Errorf("config: el modo mock no está permitido con APP_ENV=production")
	}

	return cfg, nil
}

// defaultDataDir devuelve ~/.bizflow, o un directorio temporal si no hay home.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bizflow")
	}
	return filepath.Join(home, ".bizflow")
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
