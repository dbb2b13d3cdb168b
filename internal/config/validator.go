package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared.
// Every variable has a default, so a missing ENV_SCHEMA_VERSION is accepted.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvEnvSchemaVersion)
	if schemaVersion == "" {
		return nil
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated",
			EnvEnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that are legal but probably unintended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv(EnvEnvSchemaVersion) == "" {
		warnings = append(warnings, fmt.Sprintf("%s is not set - copy .env.example to keep your settings in sync", EnvEnvSchemaVersion))
	}
	if os.Getenv(EnvRNGSeed) != "" && os.Getenv(EnvEnvironment) == "production" {
		warnings = append(warnings, "RNG_SEED is fixed in production - every game will play out the same way")
	}
	if v := os.Getenv(EnvRunProbability); v == "1" || v == "1.0" {
		warnings = append(warnings, "RUN_PROBABILITY is 1 - every escape attempt succeeds")
	}
	return warnings, nil
}
