package monster

// ConfigFileName is the name of the monsters configuration file
const ConfigFileName = "monsters.json"

// Error message formats
const (
	ErrMsgReadConfigFileFailed = "failed to read monsters config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse monsters config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrFmtDuplicateSpecies     = "%w: species '%s' defined twice"
	ErrFmtDuplicateRegion      = "%w: region '%s' defined twice"
	ErrFmtRegionInvalid        = "%w: region '%s': %v"
	ErrFmtSpeciesInvalid       = "%w: species '%s': %v"
)

// Log messages
const (
	LogMsgMonstersLoaded = "Monster catalog loaded"
)
