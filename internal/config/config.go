// Package config loads configuration for the updeto CLI from an optional
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full CLI configuration.
type Config struct {
	Lookup  LookupConfig  `yaml:"lookup" json:"lookup"`   // What to check and how
	Logging LoggingConfig `yaml:"logging" json:"logging"` // Logging and output configuration
}

// LookupConfig describes the check itself. BundleID and InstalledVersion may
// stay empty here when they are supplied on the command line instead.
type LookupConfig struct {
	BundleID         string        `yaml:"bundle_id" json:"bundle_id"`
	InstalledVersion string        `yaml:"installed_version" json:"installed_version"`
	Country          string        `yaml:"country" json:"country"`
	Timeout          time.Duration `yaml:"timeout" json:"timeout"`
	RetryCount       int           `yaml:"retry_count" json:"retry_count"`
	RetryDelay       time.Duration `yaml:"retry_delay" json:"retry_delay"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`
	Format   string `yaml:"format" json:"format"`
	Output   string `yaml:"output" json:"output"`
	FilePath string `yaml:"file_path" json:"file_path"`
}

// NewDefaultConfig creates a configuration with usable defaults: a plain
// check against the default storefront with no retries, logging warnings and
// errors as text to stderr so log output stays out of the result on stdout.
func NewDefaultConfig() *Config {
	return &Config{
		Lookup: LookupConfig{
			Timeout:    15 * time.Second,
			RetryCount: 0,
			RetryDelay: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Start with default configuration
	config := NewDefaultConfig()

	// Load from file if provided and exists
	if configPath != "" {
		if err := loadFromFile(config, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Override with environment variables
	loadFromEnvironment(config)

	// Validate the final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(config *Config, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

// loadFromEnvironment loads configuration from environment variables
func loadFromEnvironment(config *Config) {
	if bundleID := os.Getenv("UPDETO_BUNDLE_ID"); bundleID != "" {
		config.Lookup.BundleID = bundleID
	}

	if version := os.Getenv("UPDETO_INSTALLED_VERSION"); version != "" {
		config.Lookup.InstalledVersion = version
	}

	if country := os.Getenv("UPDETO_COUNTRY"); country != "" {
		config.Lookup.Country = country
	}

	if timeout := os.Getenv("UPDETO_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Lookup.Timeout = d
		}
	}

	if retries := os.Getenv("UPDETO_RETRY_COUNT"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil {
			config.Lookup.RetryCount = n
		}
	}

	if delay := os.Getenv("UPDETO_RETRY_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			config.Lookup.RetryDelay = d
		}
	}

	if level := os.Getenv("UPDETO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("UPDETO_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	if output := os.Getenv("UPDETO_LOG_OUTPUT"); output != "" {
		config.Logging.Output = output
	}

	if filePath := os.Getenv("UPDETO_LOG_FILE"); filePath != "" {
		config.Logging.FilePath = filePath
	}
}

// Validate checks the configuration for values the CLI cannot work with.
// BundleID and InstalledVersion are deliberately not required here; flags may
// still supply them after loading.
func (c *Config) Validate() error {
	if c.Lookup.Timeout < 0 {
		return fmt.Errorf("lookup timeout must not be negative, got %s", c.Lookup.Timeout)
	}
	if c.Lookup.RetryCount < 0 {
		return fmt.Errorf("lookup retry count must not be negative, got %d", c.Lookup.RetryCount)
	}
	if c.Lookup.RetryDelay < 0 {
		return fmt.Errorf("lookup retry delay must not be negative, got %s", c.Lookup.RetryDelay)
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("logging format must be json or text, got %q", c.Logging.Format)
	}

	if c.Logging.Output == "file" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging file path is required when output is file")
	}

	return nil
}
