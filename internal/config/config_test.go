package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

// clearEnv unsets all adapter variables for the duration of the test.
// t.Setenv with an empty value is treated as unset by Load.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvTimeout, EnvLogLevel, EnvMaxResultsLimit, EnvRateLimit} {
		t.Setenv(key, "")
	}
}

// missingFile points Load at a path that does not exist so the
// developer's real config file cannot leak into tests.
func missingFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 50, cfg.MaxResultsLimit)
	assert.Equal(t, 0.0, cfg.RateLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURL, "http://searx.local:9090/")
	t.Setenv(EnvTimeout, "3")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvMaxResultsLimit, "25")
	t.Setenv(EnvRateLimit, "2.5")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "http://searx.local:9090", cfg.BaseURL, "trailing slash stripped")
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 25, cfg.MaxResultsLimit)
	assert.Equal(t, 2.5, cfg.RateLimit)
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
base_url = "http://searx.home:8888"
timeout = 20
log_level = "WARN"
max_results_limit = 30
rate_limit = 1.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://searx.home:8888", cfg.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, logger.LevelWarn, cfg.LogLevel)
	assert.Equal(t, 30, cfg.MaxResultsLimit)
	assert.Equal(t, 1.0, cfg.RateLimit)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "5")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("timeout = 60\nmax_results_limit = 40\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Timeout, "env wins over file")
	assert.Equal(t, 40, cfg.MaxResultsLimit, "file wins over default")
}

func TestLoad_CoercionFailures(t *testing.T) {
	t.Run("non-numeric timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvTimeout, "ten")
		_, err := Load(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvTimeout)
	})

	t.Run("non-numeric max results", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvMaxResultsLimit, "lots")
		_, err := Load(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvMaxResultsLimit)
	})

	t.Run("unknown log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogLevel, "CHATTY")
		_, err := Load(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvLogLevel)
	})

	t.Run("malformed toml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("timeout = = 10"), 0600))
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestLoad_RangeFailures(t *testing.T) {
	t.Run("zero timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvTimeout, "0")
		_, err := Load(missingFile(t))
		require.Error(t, err)
	})

	t.Run("max results above hard cap", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvMaxResultsLimit, "101")
		_, err := Load(missingFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 100")
	})

	t.Run("negative rate limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvRateLimit, "-1")
		_, err := Load(missingFile(t))
		require.Error(t, err)
	})

	t.Run("base URL without scheme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvBaseURL, "localhost:8080")
		_, err := Load(missingFile(t))
		require.Error(t, err)
	})
}
