package server

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests  = "Too Many Requests"
	ErrMsgBattleNotFound   = "battle not found"
	ErrMsgEncodingResponse = "failed to encode response"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgBattleRecorded   = "Battle recorded"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRequestID      = "X-Request-ID"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Rate limiting
const (
	RateLimitWindowMinutes = 5
	RateLimitMaxRequests   = 1000
	RateLimitLogEvery      = 100
)

// Battle log sizing
const (
	DefaultBattleLogSize   = 100
	DefaultBattleLogTTLMin = 60
	DefaultRecentLimit     = 10
	MaxRecentLimit         = 100
)

// QuietPaths are not request-logged
var QuietPaths = []string{
	"/healthz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
