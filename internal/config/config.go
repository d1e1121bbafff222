// Package config resolves process-wide configuration for the adapter.
//
// Values are resolved once at startup, lowest to highest precedence:
// built-in defaults, an optional TOML file, then environment variables.
// The resulting Config is immutable and passed explicitly into the
// client and adapters; there is no reload.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

// Environment variables read by Load.
const (
	EnvBaseURL         = "SEARXNG_BASE_URL"
	EnvTimeout         = "SEARXNG_TIMEOUT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvMaxResultsLimit = "MAX_RESULTS_LIMIT"
	EnvRateLimit       = "SEARXNG_RATE_LIMIT"
)

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultBaseURL         = "http://localhost:8080"
	DefaultTimeoutSeconds  = 10
	DefaultMaxResultsLimit = 50

	// MaxResultsHardCap bounds MAX_RESULTS_LIMIT itself.
	MaxResultsHardCap = 100
)

// Config holds the resolved, read-only process configuration.
type Config struct {
	// BaseURL of the SearXNG instance, without trailing slash.
	BaseURL string

	// Timeout for each upstream request.
	Timeout time.Duration

	// LogLevel is the parsed logging threshold.
	LogLevel logger.Level

	// MaxResultsLimit is the per-query result ceiling.
	MaxResultsLimit int

	// RateLimit is the outbound request budget in requests per
	// second. Zero disables throttling.
	RateLimit float64
}

// fileConfig mirrors the optional TOML file. Pointer fields
// distinguish "absent" from zero values.
type fileConfig struct {
	BaseURL         *string  `toml:"base_url"`
	Timeout         *int     `toml:"timeout"`
	LogLevel        *string  `toml:"log_level"`
	MaxResultsLimit *int     `toml:"max_results_limit"`
	RateLimit       *float64 `toml:"rate_limit"`
}

// DefaultFilePath returns the default config file location,
// ~/.config/searxng-mcp/config.toml.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "searxng-mcp", "config.toml")
}

// Load resolves the configuration. filePath selects the TOML file;
// empty means DefaultFilePath. A missing file is not an error, but a
// present value that fails coercion or range validation is — the
// caller is expected to treat that as fatal before serving.
func Load(filePath string) (*Config, error) {
	cfg := &Config{
		BaseURL:         DefaultBaseURL,
		Timeout:         DefaultTimeoutSeconds * time.Second,
		LogLevel:        logger.LevelInfo,
		MaxResultsLimit: DefaultMaxResultsLimit,
	}

	if filePath == "" {
		filePath = DefaultFilePath()
	}
	if filePath != "" {
		if err := applyFile(cfg, filePath); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.Timeout != nil {
		cfg.Timeout = time.Duration(*fc.Timeout) * time.Second
	}
	if fc.LogLevel != nil {
		level, err := logger.ParseLevel(*fc.LogLevel)
		if err != nil {
			return fmt.Errorf("config file %s: log_level: %w", path, err)
		}
		cfg.LogLevel = level
	}
	if fc.MaxResultsLimit != nil {
		cfg.MaxResultsLimit = *fc.MaxResultsLimit
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup(EnvBaseURL); ok {
		cfg.BaseURL = v
	}

	if v, ok := lookup(EnvTimeout); ok {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvTimeout, v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvMaxResultsLimit); ok {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvMaxResultsLimit, v)
		}
		cfg.MaxResultsLimit = limit
	}

	if v, ok := lookup(EnvRateLimit); ok {
		rl, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", EnvRateLimit, v)
		}
		cfg.RateLimit = rl
	}

	return nil
}

// lookup reads an environment variable, treating empty as unset.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (c *Config) validate() error {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s: %q is not a valid base URL", EnvBaseURL, c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%s: timeout must be greater than 0 seconds", EnvTimeout)
	}

	if c.MaxResultsLimit <= 0 || c.MaxResultsLimit > MaxResultsHardCap {
		return fmt.Errorf("%s: must be between 1 and %d, got %d",
			EnvMaxResultsLimit, MaxResultsHardCap, c.MaxResultsLimit)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("%s: rate limit must not be negative", EnvRateLimit)
	}

	return nil
}
