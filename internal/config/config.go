package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Port            string        `env:"PORT" envDefault:"3000"`
	StorageBackend  string        `env:"STORAGE_BACKEND" envDefault:"memory"`
	DataFile        string        `env:"DATA_FILE" envDefault:"data/interns.json"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"data/fundboard.db"`
	PostgresDSN     string        `env:"POSTGRES_DSN"`
	CurrentInternID int           `env:"CURRENT_INTERN_ID" envDefault:"1"`
	AuthDelay       time.Duration `env:"AUTH_DELAY" envDefault:"1s"`
	JWTSecret       string        `env:"AUTH_JWT_SECRET"`
	ReferralSuffix  string        `env:"REFERRAL_SUFFIX" envDefault:"2025"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

var (
	cfg  *Config
	once sync.Once
)

// Load returns the process-wide config, built by New on first use.
// It panics on invalid configuration.
func Load() *Config {
	once.Do(func() {
		c, err := New()
		if err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

// New reads .env from the working directory if present, then parses and
// validates config from the environment without touching the singleton.
// Variables already set in the environment win over .env.
func New() (*Config, error) {
	_ = godotenv.Load(".env")
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendFile:
		if c.DataFile == "" {
			return errors.New("DATA_FILE is required when STORAGE_BACKEND=file")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: memory, file, sqlite, postgres (got %q)", c.StorageBackend)
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.CurrentInternID <= 0 {
		return errors.New("CURRENT_INTERN_ID must be positive")
	}
	if c.AuthDelay < 0 {
		return errors.New("AUTH_DELAY must not be negative")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
