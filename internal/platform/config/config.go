package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio, leída desde env.
type Config struct {
	Addr string

	// DSN de Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string

	// Secret para firmar tokens. Vacío => modo dev con secret por defecto.
	JWTSecret string
	TokenTTL  time.Duration

	AppName   string
	LogLevel  string
	LogFormat string
}

// Load carga .env si existe (dev) y arma la config desde env vars:
// - PORT (default 8080)
// - DB_DSN
// - JWT_SECRET, TOKEN_TTL (default 24h)
// - APP_NAME, LOG_LEVEL, LOG_FORMAT
func Load() Config {
	// .env es opcional; en prod todo viene del entorno real.
	_ = godotenv.Load()

	addr := ":8080"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		addr = ":" + v
	}

	ttl := 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("TOKEN_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	return Config{
		Addr:      addr,
		DBDSN:     strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:  ttl,
		AppName:   strings.TrimSpace(os.Getenv("APP_NAME")),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}
}
