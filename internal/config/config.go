package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backend names accepted in STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendValkey   = "valkey"
)

// Config is the process configuration, read from the environment with an
// optional .env file on top.
type Config struct {
	Addr         string        `envconfig:"ADDR" default:":8080"`
	JWTSecret    string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"720h"`
	StoreBackend string        `envconfig:"STORE_BACKEND" default:"memory"`
	DatabaseURL  string        `envconfig:"DATABASE_URL"`
	ValkeyAddr   string        `envconfig:"VALKEY_ADDR" default:"localhost:6379"`
	CORSOrigin   string        `envconfig:"CORS_ORIGIN"`
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("envconfig.Process: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendPostgres, BackendValkey:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if cfg.StoreBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required with the postgres backend")
	}

	return cfg, nil
}
