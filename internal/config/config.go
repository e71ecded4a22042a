package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config reúne as configurações do painel (BFF).
type Config struct {
	// Servidor
	Port        string
	Environment string

	// API remota
	APIURL         string
	APITimeout     time.Duration
	EnableAPIDelay bool
	APIMaxDelay    time.Duration

	// Cookies e segurança
	CookieSecret   string
	CookieSecure   bool
	CSRFKey        string
	AllowedOrigins []string

	// Cache de consultas
	CacheTTL time.Duration
}

// Emulador reúne as configurações da API de desenvolvimento (cmd/apimock).
type Emulador struct {
	Port        string
	Environment string

	DBDriver   string
	DBDSN      string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	Seed      bool
}

func carregarEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("arquivo .env não encontrado, lendo variáveis do sistema")
	}
}

// Load lê as variáveis do painel.
func Load() (*Config, error) {
	carregarEnv()

	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "3000"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),

		APIURL:         strings.TrimRight(getEnvWithDefault("API_URL", "http://localhost:3333"), "/"),
		APITimeout:     getEnvDuration("API_TIMEOUT", 10*time.Second),
		EnableAPIDelay: getEnvBool("ENABLE_API_DELAY", false),
		APIMaxDelay:    getEnvDuration("API_MAX_DELAY", time.Second),

		CookieSecret:   os.Getenv("COOKIE_SECRET"),
		CookieSecure:   getEnvBool("COOKIE_SECURE", true),
		CSRFKey:        os.Getenv("CSRF_KEY"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),

		CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),
	}
	if cfg.CookieSecret == "" && !cfg.IsProduction() {
		cfg.CookieSecret = "painel-dev-secret"
	}
	return cfg, nil
}

// LoadEmulador lê as variáveis da API de desenvolvimento.
func LoadEmulador() (*Emulador, error) {
	carregarEnv()

	return &Emulador{
		Port:        getEnvWithDefault("MOCK_PORT", "3333"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),

		DBDriver:   getEnvWithDefault("MOCK_DB_DRIVER", "sqlite"),
		DBDSN:      os.Getenv("MOCK_DB_DSN"),
		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnvWithDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvWithDefault("DB_NAME", "t21arenapark"),
		DBSSLMode:  getEnvWithDefault("DB_SSLMODE", "disable"),

		JWTSecret: getEnvWithDefault("JWT_SECRET", "apimock-dev-secret"),
		Seed:      getEnvBool("MOCK_SEED", true),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate valida se todas as configurações obrigatórias estão presentes
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("API_URL is required")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("API_URL must be an http(s) URL: %q", c.APIURL)
	}
	if c.CookieSecret == "" {
		return fmt.Errorf("COOKIE_SECRET is required")
	}
	if c.CSRFKey != "" && len(c.CSRFKey) != 32 {
		return fmt.Errorf("CSRF_KEY must have 32 bytes, got %d", len(c.CSRFKey))
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if c.EnableAPIDelay && c.APIMaxDelay <= 0 {
		slog.Warn("ENABLE_API_DELAY ligado mas API_MAX_DELAY não é positivo, atraso desativado")
		c.EnableAPIDelay = false
	}
	if !c.CookieSecure && c.IsProduction() {
		slog.Warn("COOKIE_SECURE desligado em produção")
	}
	return nil
}

// Validate valida a configuração do emulador
func (e *Emulador) Validate() error {
	switch e.DBDriver {
	case "sqlite":
		if e.DBDSN == "" {
			e.DBDSN = "file:apimock.db?_foreign_keys=on"
		}
	case "postgres":
		if e.DBDSN == "" && e.DBHost == "" {
			return fmt.Errorf("DB_HOST or MOCK_DB_DSN is required for postgres")
		}
	default:
		return fmt.Errorf("MOCK_DB_DRIVER must be postgres or sqlite, got %q", e.DBDriver)
	}
	if e.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// PostgresDSN monta a DSN a partir das variáveis DB_*.
func (e *Emulador) PostgresDSN() string {
	if e.DBDSN != "" {
		return e.DBDSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		e.DBHost, e.DBUser, e.DBPassword, e.DBName, e.DBPort, e.DBSSLMode)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
