package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/middleearth/internal/validation"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" validate:"required"`
	ServiceName string `env:"SERVICE_NAME"`
	Version     string `env:"VERSION"`

	// LogDir receives session log files; empty logs to stderr
	LogDir string `env:"LOG_DIR"`

	ContentDir string `env:"CONTENT_DIR" validate:"required"`
	PlayerName string `env:"PLAYER_NAME" validate:"required,max=32"`

	// RNGSeed of 0 seeds from the clock
	RNGSeed           int64   `env:"RNG_SEED"`
	RunProbability    float64 `env:"RUN_PROBABILITY" validate:"gte=0,lte=1"`
	LowLevelUniqueCap int     `env:"LOW_LEVEL_UNIQUE_CAP" validate:"gte=1"`

	// MetricsAddr enables the /metrics server when set, e.g. ":9090"
	MetricsAddr     string        `env:"METRICS_ADDR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:         getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		LogDir:            getEnv(EnvLogDir, DefaultLogDir),
		ContentDir:        getEnv(EnvContentDir, DefaultContentDir),
		PlayerName:        getEnv(EnvPlayerName, DefaultPlayerName),
		RNGSeed:           getEnvAsInt64(EnvRNGSeed, 0),
		RunProbability:    getEnvAsFloat(EnvRunProbability, DefaultRunProbability),
		LowLevelUniqueCap: getEnvAsInt(EnvLowLevelUniqueCap, DefaultLowLevelUniqueCap),
		MetricsAddr:       getEnv(EnvMetricsAddr, ""),
		ShutdownTimeout:   getEnvAsDuration(EnvShutdownTimeout, 5*time.Second),
	}

	if err := validation.Structs().ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ContentPath joins a content file name onto ContentDir
func (c *Config) ContentPath(name string) string {
	return filepath.Join(c.ContentDir, name)
}

// Seed returns RNGSeed, or a clock-derived seed when it is zero
func (c *Config) Seed() int64 {
	if c.RNGSeed != 0 {
		return c.RNGSeed
	}
	return time.Now().UnixNano()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if v, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
