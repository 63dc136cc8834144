// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatabaseURL is the Postgres DSN for the parameter store.
	// Empty selects the in-memory store (tests, local demos).
	DatabaseURL string `koanf:"database_url"`

	// MaxCompareSubjects caps GET /compare?ids=... fan-out.
	MaxCompareSubjects int `koanf:"max_compare_subjects"`

	// MaxRankingLimit caps GET /ranking?limit.
	MaxRankingLimit int `koanf:"max_ranking_limit"`

	// AroundWindow is the default neighbor count for GET /ranking/{id}/around.
	AroundWindow int `koanf:"around_window"`

	// SeedProbability is the chance [0,1] that the bulk generator fills a
	// given catalog definition. Seed tooling only.
	SeedProbability float64 `koanf:"seed_probability"`

	// CurrencyUnit is appended to currency parameters that carry no unit of
	// their own.
	CurrencyUnit string `koanf:"currency_unit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		DatabaseURL:        "",
		MaxCompareSubjects: 6,
		MaxRankingLimit:    100,
		AroundWindow:       2,
		SeedProbability:    0.85,
		CurrencyUnit:       "R$",
	}
	return c
}
