package main

import "errors"

// KnownMetrics is the set of metric names exported by helixmod plus recording
// rule names referenced in dashboards.
var KnownMetrics = map[string]bool{
	// API call metrics.
	"helix_api_calls_total":          true,
	"helix_request_duration_seconds": true,
	"helix_decode_failures_total":    true,

	// Rate limit and auth metrics.
	"helix_rate_limit_waits_total": true,
	"helix_token_refreshes_total":  true,

	// Recording rules.
	"helix:api_calls:rate5m":       true,
	"helix:api_errors:rate5m":      true,
	"helix:decode_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
