package item

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the name of the unique items configuration file
	ConfigFileName = "items.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil       = "config is nil"
	ErrMsgNoTiersDefined  = "no tiers defined"
	ErrMsgKindBonusUnused = "sets a bonus its kind does not use"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtDuplicateTier   = "%w: tier '%s' defined twice"
	ErrFmtDuplicateName   = "%w: item '%s' appears in more than one pool"
	ErrFmtItemInvalid     = "%w: item '%s': %v"
	ErrFmtTierInvalid     = "%w: tier '%s': %v"
	ErrFmtItemBonusUnused = "%w: item '%s' " + ErrMsgKindBonusUnused
)

// ==================== Log Messages ====================

const (
	LogMsgPoolsLoaded = "Unique item pools loaded"
)
