package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/middleearth/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	BattleStarted Type = domain.EventTypeBattleStarted
	BattleEnded   Type = domain.EventTypeBattleEnded
	MonsterSlain  Type = domain.EventTypeMonsterSlain
	PlayerLevelUp Type = domain.EventTypePlayerLevelUp
	ItemFound     Type = domain.EventTypeItemFound
)

// Metadata keys
const (
	MetadataKeyBattleID = "battle_id"
)

// BattleStartedPayloadV1 is the typed payload for battle started events
type BattleStartedPayloadV1 struct {
	BattleID        string                  `json:"battle_id"`
	Context         domain.EncounterContext `json:"context"`
	Region          domain.Region           `json:"region"`
	MonsterCount    int                     `json:"monster_count"`
	BonusDifficulty float64                 `json:"bonus_difficulty"`
}

// BattleEndedPayloadV1 is the typed payload for battle ended events
type BattleEndedPayloadV1 struct {
	BattleID         string                  `json:"battle_id"`
	Context          domain.EncounterContext `json:"context"`
	Region           domain.Region           `json:"region"`
	Outcome          domain.Outcome          `json:"outcome"`
	Rounds           int                     `json:"rounds"`
	ExperienceGained int                     `json:"experience_gained"`
	MonstersSlain    int                     `json:"monsters_slain"`
}

// MonsterSlainPayloadV1 is the typed payload for monster slain events
type MonsterSlainPayloadV1 struct {
	BattleID   string `json:"battle_id"`
	Monster    string `json:"monster"`
	Experience int    `json:"experience"`
}

// PlayerLevelUpPayloadV1 is the typed payload for level up events
type PlayerLevelUpPayloadV1 struct {
	Player   string `json:"player"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// ItemFoundPayloadV1 is the typed payload for item found events
type ItemFoundPayloadV1 struct {
	BattleID string `json:"battle_id"`
	Item     string `json:"item"`
	Tier     string `json:"tier"`
	Kept     bool   `json:"kept"` // false when the item was too heavy to carry
}

func withBattleID(battleID string) Metadata {
	return map[string]interface{}{MetadataKeyBattleID: battleID}
}

// NewBattleStartedEvent creates a battle started event
func NewBattleStartedEvent(p BattleStartedPayloadV1) Event {
	return Event{Version: EventSchemaVersion, Type: BattleStarted, Payload: p, Metadata: withBattleID(p.BattleID)}
}

// NewBattleEndedEvent creates a battle ended event
func NewBattleEndedEvent(p BattleEndedPayloadV1) Event {
	return Event{Version: EventSchemaVersion, Type: BattleEnded, Payload: p, Metadata: withBattleID(p.BattleID)}
}

// NewMonsterSlainEvent creates a monster slain event
func NewMonsterSlainEvent(battleID, monster string, experience int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MonsterSlain,
		Payload: MonsterSlainPayloadV1{
			BattleID:   battleID,
			Monster:    monster,
			Experience: experience,
		},
		Metadata: withBattleID(battleID),
	}
}

// NewPlayerLevelUpEvent creates a level up event
func NewPlayerLevelUpEvent(player string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLevelUp,
		Payload: PlayerLevelUpPayloadV1{
			Player:   player,
			OldLevel: oldLevel,
			NewLevel: newLevel,
		},
	}
}

// NewItemFoundEvent creates an item found event
func NewItemFoundEvent(battleID, itemName, tier string, kept bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemFound,
		Payload: ItemFoundPayloadV1{
			BattleID: battleID,
			Item:     itemName,
			Tier:     tier,
			Kept:     kept,
		},
		Metadata: withBattleID(battleID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publishing goroutine, in subscription order.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopBus discards every event
type NopBus struct{}

// Publish does nothing
func (NopBus) Publish(context.Context, Event) error { return nil }

// Subscribe does nothing
func (NopBus) Subscribe(Type, Handler) {}
