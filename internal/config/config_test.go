package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 15*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 0, cfg.Lookup.RetryCount)
	assert.Equal(t, 100*time.Millisecond, cfg.Lookup.RetryDelay)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	content := `
lookup:
  bundle_id: com.example.app
  installed_version: 1.2.3
  country: us
  timeout: 5s
  retry_count: 2
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "com.example.app", cfg.Lookup.BundleID)
	assert.Equal(t, "1.2.3", cfg.Lookup.InstalledVersion)
	assert.Equal(t, "us", cfg.Lookup.Country)
	assert.Equal(t, 5*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 2, cfg.Lookup.RetryCount)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Unset keys keep their defaults.
	assert.Equal(t, 100*time.Millisecond, cfg.Lookup.RetryDelay)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookup: ["), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("UPDETO_BUNDLE_ID", "com.env.app")
	t.Setenv("UPDETO_INSTALLED_VERSION", "9.9.9")
	t.Setenv("UPDETO_COUNTRY", "de")
	t.Setenv("UPDETO_TIMEOUT", "3s")
	t.Setenv("UPDETO_RETRY_COUNT", "4")
	t.Setenv("UPDETO_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "com.env.app", cfg.Lookup.BundleID)
	assert.Equal(t, "9.9.9", cfg.Lookup.InstalledVersion)
	assert.Equal(t, "de", cfg.Lookup.Country)
	assert.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 4, cfg.Lookup.RetryCount)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	content := `
lookup:
  bundle_id: com.file.app
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("UPDETO_BUNDLE_ID", "com.env.app")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "com.env.app", cfg.Lookup.BundleID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:        "negative timeout",
			mutate:      func(c *Config) { c.Lookup.Timeout = -time.Second },
			expectError: true,
		},
		{
			name:        "negative retry count",
			mutate:      func(c *Config) { c.Lookup.RetryCount = -1 },
			expectError: true,
		},
		{
			name:        "negative retry delay",
			mutate:      func(c *Config) { c.Lookup.RetryDelay = -time.Millisecond },
			expectError: true,
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.Logging.Format = "xml" },
			expectError: true,
		},
		{
			name:        "file output without path",
			mutate:      func(c *Config) { c.Logging.Output = "file" },
			expectError: true,
		},
		{
			name: "file output with path",
			mutate: func(c *Config) {
				c.Logging.Output = "file"
				c.Logging.FilePath = "/tmp/updeto.log"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
