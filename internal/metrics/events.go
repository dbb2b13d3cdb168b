package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BattleStarted,
		event.BattleEnded,
		event.MonsterSlain,
		event.PlayerLevelUp,
		event.ItemFound,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are counted and skipped so metrics never fail a battle.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.BattleEnded:
		var p event.BattleEndedPayloadV1
		if p, err = event.DecodePayload[event.BattleEndedPayloadV1](evt.Payload); err == nil {
			BattlesTotal.WithLabelValues(string(p.Context), string(p.Outcome)).Inc()
			BattleRounds.Observe(float64(p.Rounds))
			ExperienceGained.Add(float64(p.ExperienceGained))
		}

	case event.MonsterSlain:
		var p event.MonsterSlainPayloadV1
		if p, err = event.DecodePayload[event.MonsterSlainPayloadV1](evt.Payload); err == nil {
			MonstersSlain.WithLabelValues(p.Monster).Inc()
		}

	case event.PlayerLevelUp:
		var p event.PlayerLevelUpPayloadV1
		if p, err = event.DecodePayload[event.PlayerLevelUpPayloadV1](evt.Payload); err == nil {
			if gained := p.NewLevel - p.OldLevel; gained > 0 {
				LevelUps.Add(float64(gained))
			}
			PlayerLevel.Set(float64(p.NewLevel))
		}

	case event.ItemFound:
		var p event.ItemFoundPayloadV1
		if p, err = event.DecodePayload[event.ItemFoundPayloadV1](evt.Payload); err == nil {
			ItemsFound.WithLabelValues(p.Tier, strconv.FormatBool(p.Kept)).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
