package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameBattlesTotal     = "battles_total"
	MetricNameBattleRounds     = "battle_rounds"
	MetricNameMonstersSlain    = "monsters_slain_total"
	MetricNameExperienceGained = "experience_gained_total"
	MetricNameLevelUps         = "player_level_ups_total"
	MetricNamePlayerLevel      = "player_level"
	MetricNameItemsFound       = "unique_items_found_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event payloads the collector could not decode"

	HelpTextBattlesTotal     = "Total number of battles by encounter context and outcome"
	HelpTextBattleRounds     = "Rounds fought per battle"
	HelpTextMonstersSlain    = "Total number of monsters slain by name"
	HelpTextExperienceGained = "Total experience earned in battle"
	HelpTextLevelUps         = "Total number of levels gained"
	HelpTextPlayerLevel      = "Current player level"
	HelpTextItemsFound       = "Total number of unique items found by tier"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelContext = "context"
	LabelOutcome = "outcome"
	LabelMonster = "monster"
	LabelTier    = "tier"
	LabelKept    = "kept"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BattleRoundBuckets covers quick skirmishes through long story waves
var BattleRoundBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 34}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
