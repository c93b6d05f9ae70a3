package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
auth:
  client_id: my-client-id
  token: my-user-token
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "my-client-id", cfg.Auth.ClientID)
				assert.Equal(t, "my-user-token", cfg.Auth.Token)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
auth:
  client_id: my-client-id
  token: my-user-token
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://id.twitch.tv/oauth2/token", cfg.Auth.TokenURL)
				assert.Equal(t, "https://api.twitch.tv/helix", cfg.API.BaseURL)
				assert.Equal(t, "lenient", cfg.API.DecodeMode)
				assert.Equal(t, 800.0, cfg.RateLimit.PerMinute)
				assert.Equal(t, 40, cfg.RateLimit.Burst)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
auth:
  client_id: my-client-id
  client_secret: "${TEST_CLIENT_SECRET}"
`,
			envVars: map[string]string{
				"TEST_CLIENT_SECRET": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Auth.ClientSecret)
			},
		},
		{
			name: "missing required auth.client_id",
			yaml: `
auth:
  token: my-user-token
`,
			wantErr: "auth.client_id is required",
		},
		{
			name: "missing both token and client secret",
			yaml: `
auth:
  client_id: my-client-id
`,
			wantErr: "one of auth.token or auth.client_secret is required",
		},
		{
			name: "invalid decode mode",
			yaml: `
auth:
  client_id: my-client-id
  token: my-user-token
api:
  decode_mode: pedantic
`,
			wantErr: `api.decode_mode must be one of: strict, lenient (got "pedantic")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
auth:
  client_id: my-client-id
  client_secret: my-secret
  token_url: https://id.example.test/oauth2/token
  scopes:
    - moderation:read
api:
  base_url: https://helix.example.test
  decode_mode: strict
rate_limit:
  per_minute: 120
  burst: 10
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "my-secret", cfg.Auth.ClientSecret)
				assert.Equal(t, "https://id.example.test/oauth2/token", cfg.Auth.TokenURL)
				assert.Equal(t, []string{"moderation:read"}, cfg.Auth.Scopes)
				assert.Equal(t, "https://helix.example.test", cfg.API.BaseURL)
				assert.Equal(t, "strict", cfg.API.DecodeMode)
				assert.Equal(t, 120.0, cfg.RateLimit.PerMinute)
				assert.Equal(t, 10, cfg.RateLimit.Burst)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
