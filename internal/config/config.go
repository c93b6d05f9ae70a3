// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Auth      AuthConfig      `yaml:"auth"`
	API       APIConfig       `yaml:"api"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AuthConfig defines Twitch credential settings. Either a static user token or
// a client secret (for app access tokens) must be set.
type AuthConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	Token        string   `yaml:"token"`
	TokenURL     string   `yaml:"token_url"`
	Scopes       []string `yaml:"scopes"`
}

// APIConfig defines Helix API settings.
type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	DecodeMode string `yaml:"decode_mode"` // strict, lenient
}

// RateLimitConfig defines Helix API rate limiting settings.
type RateLimitConfig struct {
	PerMinute float64 `yaml:"per_minute"`
	Burst     int     `yaml:"burst"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyAuthDefaults(&cfg.Auth)
	applyAPIDefaults(&cfg.API)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyLoggingDefaults(&cfg.Logging)
}

func applyAuthDefaults(a *AuthConfig) {
	if a.TokenURL == "" {
		a.TokenURL = "https://id.twitch.tv/oauth2/token"
	}
}

func applyAPIDefaults(a *APIConfig) {
	if a.BaseURL == "" {
		a.BaseURL = "https://api.twitch.tv/helix"
	}
	if a.DecodeMode == "" {
		a.DecodeMode = "lenient"
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerMinute == 0 {
		r.PerMinute = 800
	}
	if r.Burst == 0 {
		r.Burst = 40
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Auth.ClientID == "" {
		errs = append(errs, fmt.Errorf("auth.client_id is required"))
	}
	if cfg.Auth.Token == "" && cfg.Auth.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("one of auth.token or auth.client_secret is required"))
	}

	switch cfg.API.DecodeMode {
	case "strict", "lenient":
	default:
		errs = append(
			errs,
			fmt.Errorf("api.decode_mode must be one of: strict, lenient (got %q)", cfg.API.DecodeMode),
		)
	}

	return errors.Join(errs...)
}
