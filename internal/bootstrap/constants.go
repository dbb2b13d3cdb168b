package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGame        = "Starting Middle-earth"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Content Loading
// =============================================================================

const (
	LogMsgLoadingContent = "Loading game content"
	LogMsgContentLoaded  = "Game content loaded"

	ErrMsgFailedLoadMonsters = "failed to load monsters"
	ErrMsgFailedLoadItems    = "failed to load items"
	ErrMsgFailedLoadWorld    = "failed to load world"
	ErrMsgFailedCreateEngine = "failed to create battle engine"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgBattleLogRegistered        = "Battle log registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgStoppingEventStream  = "Stopping event stream..."
	LogMsgShuttingDownServer   = "Shutting down metrics server..."
	LogMsgServerStopped        = "Metrics server stopped"
	LogMsgServerForcedShutdown = "Metrics server forced to shutdown"
	LogMsgShutdownComplete     = "Shutdown complete"
)
