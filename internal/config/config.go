// Package config defines the server configuration and its loading order:
// defaults, then an optional YAML file, then MARKETSCORE_* environment
// variables. The scoring packages take no configuration at all; everything
// here belongs to the HTTP surface.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration for the scoring server.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// AllowedOrigins is the CORS allowlist. "*" allows any origin.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// RateLimitPerMin caps requests per client IP per minute. 0 disables
	// rate limiting.
	RateLimitPerMin int `koanf:"rate_limit_per_min"`

	// RateLimitBurst is the token-bucket burst on top of the per-minute rate.
	RateLimitBurst int `koanf:"rate_limit_burst"`
}

// New returns the defaults applied before any file or env overrides.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		AllowedOrigins:  []string{"*"},
		RateLimitPerMin: 120,
		RateLimitBurst:  30,
	}
}

// Load builds a Config by layering defaults, an optional YAML file named by
// MARKETSCORE_CONFIG, and MARKETSCORE_* env vars (highest precedence).
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MARKETSCORE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// MARKETSCORE_ADDR -> addr, MARKETSCORE_RATE_LIMIT_PER_MIN -> rate_limit_per_min
	envProvider := env.Provider("MARKETSCORE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "marketscore_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.RateLimitPerMin < 0 {
		return nil, errors.New("rate_limit_per_min must not be negative")
	}
	return &cfg, nil
}
