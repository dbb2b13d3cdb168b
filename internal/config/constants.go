package config

// Content file names inside CONTENT_DIR
const (
	ContentFileMonsters = "monsters.json"
	ContentFileItems    = "items.json"
	ContentFileWorld    = "world.yaml"
)

// Defaults
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "middleearth"
	DefaultVersion           = "dev"
	DefaultLogDir            = "logs"
	DefaultContentDir        = "configs"
	DefaultPlayerName        = "Frodo"
	DefaultRunProbability    = 0.5
	DefaultLowLevelUniqueCap = 15
)

// Environment variable names
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvLogDir            = "LOG_DIR"
	EnvContentDir        = "CONTENT_DIR"
	EnvPlayerName        = "PLAYER_NAME"
	EnvRNGSeed           = "RNG_SEED"
	EnvRunProbability    = "RUN_PROBABILITY"
	EnvLowLevelUniqueCap = "LOW_LEVEL_UNIQUE_CAP"
	EnvMetricsAddr       = "METRICS_ADDR"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvEnvSchemaVersion  = "ENV_SCHEMA_VERSION"
)
