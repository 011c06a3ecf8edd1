package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration. Everything has a sensible
// default; a bare `laimis` invocation works without any environment setup.
type Config struct {
	// DBPath is the SQLite database file. Empty means ~/.laimis/laimis.db.
	DBPath string `env:"LAIMIS_DB"`

	// LogUseCases enables slog lines for every service operation, written
	// to stderr so they don't corrupt piped command output.
	LogUseCases bool `env:"LAIMIS_LOG_USECASES" envDefault:"false"`

	// DefaultVATRate is the VAT percentage applied to new invoice lines
	// when none is given. 21 is the standard Lithuanian rate.
	DefaultVATRate string `env:"LAIMIS_DEFAULT_VAT_RATE" envDefault:"21"`

	// NoColor disables ANSI styling even on a terminal.
	NoColor bool `env:"LAIMIS_NO_COLOR" envDefault:"false"`
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honored for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".laimis", "laimis.db")
	}

	rate, err := decimal.NewFromString(cfg.DefaultVATRate)
	if err != nil {
		return nil, fmt.Errorf("LAIMIS_DEFAULT_VAT_RATE: %w", err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("LAIMIS_DEFAULT_VAT_RATE must not be negative (got %s)", rate)
	}

	return cfg, nil
}

// VATRate returns the default VAT rate as a decimal. Load has already
// validated the string.
func (c *Config) VATRate() decimal.Decimal {
	return decimal.RequireFromString(c.DefaultVATRate)
}

// EnsureDBDir creates the parent directory of DBPath if needed.
func (c *Config) EnsureDBDir() error {
	return os.MkdirAll(filepath.Dir(c.DBPath), 0o755)
}
