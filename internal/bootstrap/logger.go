package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/middleearth/internal/config"
	"github.com/osse101/middleearth/internal/logger"
)

// LoggerConfig maps application config onto the logger's config.
// Source locations are only added in dev.
func LoggerConfig(cfg *config.Config) logger.Config {
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"
	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
}

// SetupLogger initializes the application logger.
// Stdout belongs to the game console, so logs go to a timestamped file in
// cfg.LogDir, or to stderr when LogDir is empty.
// Returns the log file handle (caller must close; nil for stderr) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if cfg.LogDir == "" {
		logger.InitLogger(LoggerConfig(cfg))
		logStartup(cfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(LoggerConfig(cfg), logFile)
	logStartup(cfg)

	return logFile, nil
}

func logStartup(cfg *config.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingGame,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"content_dir", cfg.ContentDir,
		"player", cfg.PlayerName,
		"rng_seed", cfg.RNGSeed,
		"run_probability", cfg.RunProbability,
		"low_level_unique_cap", cfg.LowLevelUniqueCap,
		"metrics_addr", cfg.MetricsAddr)
}

// cleanupLogs removes the oldest session logs once LogFileRetentionLimit is reached,
// keeping LogFileRetentionCount so the new session brings the total back to the limit.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// timestamped names sort chronologically
	sort.Strings(logFiles)

	if len(logFiles) < LogFileRetentionLimit {
		return
	}
	for _, name := range logFiles[:len(logFiles)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
