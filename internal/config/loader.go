package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if BETCOMPARE_CONFIG is set
//  3. env (prefix BETCOMPARE_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("BETCOMPARE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: BETCOMPARE_ADDR, BETCOMPARE_DATABASE_URL, ...
	// Map env keys like BETCOMPARE_DATABASE_URL -> database_url (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("BETCOMPARE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "betcompare_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.MaxCompareSubjects < 2 {
		return nil, fmt.Errorf("%w: max_compare_subjects must be at least 2", ErrInvalidConfig)
	}
	if cfg.MaxRankingLimit < 1 {
		return nil, fmt.Errorf("%w: max_ranking_limit must be positive", ErrInvalidConfig)
	}
	if cfg.AroundWindow < 1 {
		return nil, fmt.Errorf("%w: around_window must be positive", ErrInvalidConfig)
	}
	if cfg.SeedProbability < 0 || cfg.SeedProbability > 1 {
		return nil, fmt.Errorf("%w: seed_probability must be within [0,1]", ErrInvalidConfig)
	}
	_ = ctx
	return &cfg, nil
}
