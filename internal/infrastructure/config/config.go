package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration. The defaults describe
// the statement period the tool was originally written to settle.
type Config struct {
	// Statement
	StatementPath string `env:"STATEMENT_PATH" envDefault:"tmp/statement.html"`

	// Billing period, inclusive year-month bounds.
	StartMonth string `env:"START_MONTH" envDefault:"2022-08"`
	EndMonth   string `env:"END_MONTH"   envDefault:"2023-04"`

	// JRatio is J's fraction of proportional-split charges, derived
	// from the living-space square footage split.
	JRatio decimal.Decimal `env:"J_RATIO" envDefault:"0.47651"`

	// GuestMonths are the year-month keys where A had an extra
	// occupant and utilities split three ways instead of two.
	GuestMonths []string `env:"GUEST_MONTHS" envSeparator:"," envDefault:"2023-02,2023-03,2023-04"`

	// ExcludedDates drops known-misdated items from a month's bucket,
	// as "month:date" pairs. The default removes a 2023-04-29 payment
	// that belonged to the May statement.
	ExcludedDates []string `env:"EXCLUDED_DATES" envSeparator:"," envDefault:"2023-04:2023-04-29"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.StartMonth > cfg.EndMonth {
		return nil, fmt.Errorf("start month %s is after end month %s", cfg.StartMonth, cfg.EndMonth)
	}
	if cfg.JRatio.IsNegative() || cfg.JRatio.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("J ratio %s must be between 0 and 1", cfg.JRatio)
	}

	return cfg, nil
}
