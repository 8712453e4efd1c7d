// Package config maps process environment onto a typed Config.
//
// An optional .env file in the working directory is loaded first.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all runtime configuration for the blogpost service.
type Config struct {
	Port        string `env:"PORT"        envDefault:"8080"        validate:"required,numeric"`
	Environment string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development production test"`
	LogLevel    string `env:"LOG_LEVEL"   envDefault:"info"        validate:"oneof=trace debug info warn error fatal panic disabled"`

	// DatabaseURL is the Badger directory backing the live store.
	DatabaseURL string `env:"DATABASE_URL" envDefault:"data/badger" validate:"required"`
	// TestDatabaseURL is the Badger directory for tests; empty means in-memory.
	TestDatabaseURL string `env:"TEST_DATABASE_URL"`
	BackupDir       string `env:"BACKUP_DIR" envDefault:"data/backups" validate:"required"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"  envDefault:"10s" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s" validate:"gt=0"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tag rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
