package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/middleearth/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every StreamedTypes event to the hub
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(StreamedTypes))
	for _, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscriberRegistered, "types", names)
}

// forward relays the typed payload unchanged; JSON tags on the payload structs define the wire shape
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	battleID, _ := evt.GetMetadataValue(event.MetadataKeyBattleID).(string)

	s.hub.Broadcast(string(evt.Type), battleID, evt.Payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"battle_id", battleID,
		"clients", s.hub.ClientCount())
	return nil
}
