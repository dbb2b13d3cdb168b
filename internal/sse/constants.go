package sse

import (
	"time"

	"github.com/osse101/middleearth/internal/event"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE. Game events keep their bus names.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// StreamedTypes are the bus events forwarded to clients
var StreamedTypes = []event.Type{
	event.BattleStarted,
	event.BattleEnded,
	event.MonsterSlain,
	event.PlayerLevelUp,
	event.ItemFound,
}

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgEventDropped         = "SSE broadcast buffer full, event dropped"
	LogMsgClientEventDropped   = "SSE client buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgSubscriberRegistered = "SSE subscriber registered for event types"
)

// HTTP
const (
	ErrMsgStreamingUnsupported = "streaming not supported"
	QueryParamTypes            = "types"
)
