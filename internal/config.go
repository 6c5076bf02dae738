package internal

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration read from the environment.
type Config struct {
	// Port and Address may still be overridden by command line flags.
	Port    string `env:"PORT" envDefault:"8080"`
	Address string `env:"ADDRESS" envDefault:"0.0.0.0"`

	// DataURL is the base URL the data snapshots are served from,
	// e.g. https://example.github.io/k-movie-archive/.
	DataURL string `env:"DATA_URL"`

	// LegacyDate wires the fixed-filename page variant when set (YYYYMMDD).
	LegacyDate string `env:"LEGACY_DATE"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
