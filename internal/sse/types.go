package sse

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	BattleID  string      `json:"battle_id,omitempty"`
	Payload   interface{} `json:"payload"`
}

// ConnectedPayload is the first message on every stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}
