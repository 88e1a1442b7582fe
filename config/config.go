// Package config loads client configuration from the environment with fixed
// fallbacks. The base URL is the only value the dashboard must supply; the
// rest tunes retry, timeout and cache behavior.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/nomad3/shopapi"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// SHOPAPI_BASE_URL, SHOPAPI_TIMEOUT, SHOPAPI_MAX_RETRIES.
const envPrefix = "SHOPAPI_"

// Config holds every environment-tunable client setting.
type Config struct {
	BaseURL    string        `koanf:"base_url" validate:"required,url"`
	Timeout    time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxRetries int           `koanf:"max_retries" validate:"gte=0"`
	RetryDelay time.Duration `koanf:"retry_delay" validate:"gt=0"`
	CacheTTL   time.Duration `koanf:"cache_ttl" validate:"gt=0"`
	LogLevel   string        `koanf:"log_level" validate:"oneof=trace debug info warn error disabled"`
}

// Load reads configuration with defaults first and SHOPAPI_* environment
// variables on top, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"base_url":    shopapi.DefaultBaseURL,
		"timeout":     shopapi.DefaultTimeout,
		"max_retries": shopapi.DefaultMaxRetries,
		"retry_delay": shopapi.DefaultRetryDelay,
		"cache_ttl":   shopapi.DefaultCacheTTL,
		"log_level":   "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(envprovider.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Options translates the config into client construction options.
func (c *Config) Options() []shopapi.Option {
	return []shopapi.Option{
		shopapi.WithBaseURL(c.BaseURL),
		shopapi.WithTimeout(c.Timeout),
		shopapi.WithMaxRetries(c.MaxRetries),
		shopapi.WithRetryDelay(c.RetryDelay),
		shopapi.WithCacheTTL(c.CacheTTL),
	}
}
