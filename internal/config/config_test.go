package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
		assert.Equal(t, DefaultEnvironment, cfg.Environment)
		assert.Equal(t, DefaultContentDir, cfg.ContentDir)
		assert.Equal(t, DefaultLogDir, cfg.LogDir)
		assert.Equal(t, DefaultPlayerName, cfg.PlayerName)
		assert.Zero(t, cfg.RNGSeed)
		assert.Equal(t, DefaultRunProbability, cfg.RunProbability)
		assert.Equal(t, DefaultLowLevelUniqueCap, cfg.LowLevelUniqueCap)
		assert.Empty(t, cfg.MetricsAddr)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvContentDir, "/srv/content")
		t.Setenv(EnvPlayerName, "Samwise")
		t.Setenv(EnvRNGSeed, "1234")
		t.Setenv(EnvRunProbability, "0.25")
		t.Setenv(EnvLowLevelUniqueCap, "10")
		t.Setenv(EnvMetricsAddr, ":9090")
		t.Setenv(EnvShutdownTimeout, "2s")
		t.Setenv(EnvLogDir, "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "Samwise", cfg.PlayerName)
		assert.Empty(t, cfg.LogDir, "set but empty disables file logging")
		assert.Equal(t, int64(1234), cfg.RNGSeed)
		assert.Equal(t, int64(1234), cfg.Seed())
		assert.Equal(t, 0.25, cfg.RunProbability)
		assert.Equal(t, 10, cfg.LowLevelUniqueCap)
		assert.Equal(t, ":9090", cfg.MetricsAddr)
		assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, filepath.Join("/srv/content", ContentFileWorld), cfg.ContentPath(ContentFileWorld))
	})

	t.Run("unparsable numbers fall back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvRNGSeed, "lucky")
		t.Setenv(EnvRunProbability, "often")
		t.Setenv(EnvLowLevelUniqueCap, "15.5")
		t.Setenv(EnvShutdownTimeout, "100")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Zero(t, cfg.RNGSeed)
		assert.Equal(t, DefaultRunProbability, cfg.RunProbability)
		assert.Equal(t, DefaultLowLevelUniqueCap, cfg.LowLevelUniqueCap)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"bad log level", EnvLogLevel, "loud", "log_level"},
		{"bad log format", EnvLogFormat, "xml", "log_format"},
		{"run probability above one", EnvRunProbability, "1.5", "run_probability"},
		{"negative run probability", EnvRunProbability, "-0.1", "run_probability"},
		{"zero level cap", EnvLowLevelUniqueCap, "0", "low_level_unique_cap"},
		{"empty content dir", EnvContentDir, "", "content_dir"},
		{"empty player name", EnvPlayerName, "", "player_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSeed_ZeroUsesClock(t *testing.T) {
	cfg := &Config{}
	assert.NotZero(t, cfg.Seed())
}

func TestEnvHelpers(t *testing.T) {
	t.Run("getEnv distinguishes empty from unset", func(t *testing.T) {
		os.Unsetenv("TEST_STR_VAR")
		assert.Equal(t, "fallback", getEnv("TEST_STR_VAR", "fallback"))
		t.Setenv("TEST_STR_VAR", "")
		assert.Equal(t, "", getEnv("TEST_STR_VAR", "fallback"))
	})

	t.Run("getEnvAsInt", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))
		t.Setenv("TEST_INT_VAR", "42.5")
		assert.Equal(t, 10, getEnvAsInt("TEST_INT_VAR", 10))
	})

	t.Run("getEnvAsFloat", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "0.75")
		assert.Equal(t, 0.75, getEnvAsFloat("TEST_FLOAT_VAR", 0.1))
		t.Setenv("TEST_FLOAT_VAR", "")
		assert.Equal(t, 0.1, getEnvAsFloat("TEST_FLOAT_VAR", 0.1))
	})

	t.Run("getEnvAsDuration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m45s")
		assert.Equal(t, time.Hour+30*time.Minute+45*time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		t.Setenv("TEST_DURATION_VAR", "100")
		assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})
}

// clearEnvVars unsets every config variable for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvLogDir, EnvContentDir, EnvPlayerName, EnvRNGSeed, EnvRunProbability,
		EnvLowLevelUniqueCap, EnvMetricsAddr, EnvShutdownTimeout, EnvEnvSchemaVersion,
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
