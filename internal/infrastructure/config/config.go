package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	// Snapshot source
	SnapshotPath string `env:"SNAPSHOT_PATH" envDefault:"snapshot.json"`
	ProjectID    string `env:"PROJECT_ID"    envDefault:""`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Settlement
	MaxExactMatchDebts int           `env:"SETTLE_MAX_EXACT_MATCH_DEBTS" envDefault:"30"`
	DivisionPrecision  int32         `env:"SETTLE_DIVISION_PRECISION"    envDefault:"16"`
	DisplayPlaces      int32         `env:"SETTLE_DISPLAY_PLACES"        envDefault:"2"`
	ImbalanceTolerance string        `env:"IMBALANCE_TOLERANCE"          envDefault:"0.01"`
	ComputeTimeout     time.Duration `env:"COMPUTE_TIMEOUT"              envDefault:"10s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Tolerance parses ImbalanceTolerance.
func (c *Config) Tolerance() (decimal.Decimal, error) {
	return decimal.NewFromString(c.ImbalanceTolerance)
}
