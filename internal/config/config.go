// Package config manages application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxPageSize mirrors the provider's per-call result limit.
const MaxPageSize = 50

// Config holds all application configuration.
type Config struct {
	// APIKey is the YouTube Data API key. Required; env only.
	APIKey string `yaml:"-"`

	// MaxResults is the default page size for searches without an
	// explicit max_results.
	MaxResults int64 `yaml:"max_results"`

	// DefaultAudience is applied to searches without an audience filter.
	// Empty means no filter.
	DefaultAudience string `yaml:"default_audience"`

	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// RequestTimeout bounds one provider round trip.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ConfigError reports a missing or invalid configuration value. It is
// fatal at startup; no request is served with a bad config.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Field + ": " + e.Reason
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxResults:     10,
		Addr:           ":5000",
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
	}
}

// Load loads configuration from the optional YAML file and environment
// variables, then validates it. Priority: env vars > config file > defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load ytagent.yaml from the current directory
// or the user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytagent.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "ytagent", "ytagent.yaml"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTAGENT_MAX_RESULTS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxResults = n
		}
	}
	if v := os.Getenv("YTAGENT_DEFAULT_AUDIENCE"); v != "" {
		c.DefaultAudience = v
	}
	if v := os.Getenv("YTAGENT_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("YTAGENT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("YTAGENT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{Field: "YOUTUBE_API_KEY", Reason: "not set"}
	}
	if c.MaxResults < 1 || c.MaxResults > MaxPageSize {
		return &ConfigError{Field: "max_results",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxPageSize, c.MaxResults)}
	}
	if c.RequestTimeout <= 0 {
		return &ConfigError{Field: "request_timeout", Reason: "must be positive"}
	}
	if _, err := c.SlogLevel(); err != nil {
		return &ConfigError{Field: "log_level", Reason: err.Error()}
	}
	return nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", c.LogLevel)
}
