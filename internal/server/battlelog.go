package server

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/logger"
)

// FoundItem is an item drop recorded against a battle
type FoundItem struct {
	Item string `json:"item"`
	Tier string `json:"tier"`
	Kept bool   `json:"kept"`
}

// BattleSummary is the read-only record of one battle
type BattleSummary struct {
	ID               string                  `json:"id"`
	Context          domain.EncounterContext `json:"context"`
	Region           domain.Region           `json:"region"`
	Outcome          domain.Outcome          `json:"outcome,omitempty"`
	Rounds           int                     `json:"rounds"`
	ExperienceGained int                     `json:"experience_gained"`
	MonsterCount     int                     `json:"monster_count"`
	MonstersSlain    []string                `json:"monsters_slain"`
	ItemsFound       []FoundItem             `json:"items_found"`
	StartedAt        time.Time               `json:"started_at"`
	EndedAt          *time.Time              `json:"ended_at,omitempty"`
}

// Totals are lifetime counters since the process started
type Totals struct {
	Battles       int    `json:"battles"`
	Victories     int    `json:"victories"`
	Defeats       int    `json:"defeats"`
	Fled          int    `json:"fled"`
	MonstersSlain int    `json:"monsters_slain"`
	Experience    int    `json:"experience"`
	ItemsKept     int    `json:"items_kept"`
	Player        string `json:"player,omitempty"`
	Level         int    `json:"level,omitempty"`
}

// BattleLog keeps recent battles in a bounded, expiring LRU fed by the event bus.
// It is safe for concurrent use by the game loop and HTTP handlers.
type BattleLog struct {
	mu      sync.RWMutex
	battles *expirable.LRU[string, *BattleSummary]
	totals  Totals
	now     func() time.Time
}

// NewBattleLog creates a log holding at most size battles for ttl
func NewBattleLog(size int, ttl time.Duration) *BattleLog {
	if size <= 0 {
		size = DefaultBattleLogSize
	}
	return &BattleLog{
		battles: expirable.NewLRU[string, *BattleSummary](size, nil, ttl),
		now:     time.Now,
	}
}

// Register subscribes the log to every battle event type
func (l *BattleLog) Register(bus event.Bus) {
	bus.Subscribe(event.BattleStarted, l.HandleEvent)
	bus.Subscribe(event.BattleEnded, l.HandleEvent)
	bus.Subscribe(event.MonsterSlain, l.HandleEvent)
	bus.Subscribe(event.PlayerLevelUp, l.HandleEvent)
	bus.Subscribe(event.ItemFound, l.HandleEvent)
}

// HandleEvent folds one event into the log
func (l *BattleLog) HandleEvent(ctx context.Context, evt event.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch evt.Type {
	case event.BattleStarted:
		p, err := event.DecodePayload[event.BattleStartedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		l.battles.Add(p.BattleID, &BattleSummary{
			ID:            p.BattleID,
			Context:       p.Context,
			Region:        p.Region,
			MonsterCount:  p.MonsterCount,
			MonstersSlain: []string{},
			ItemsFound:    []FoundItem{},
			StartedAt:     l.now(),
		})

	case event.MonsterSlain:
		p, err := event.DecodePayload[event.MonsterSlainPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		l.totals.MonstersSlain++
		if b, ok := l.battles.Peek(p.BattleID); ok {
			b.MonstersSlain = append(b.MonstersSlain, p.Monster)
		}

	case event.ItemFound:
		p, err := event.DecodePayload[event.ItemFoundPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		if p.Kept {
			l.totals.ItemsKept++
		}
		if b, ok := l.battles.Peek(p.BattleID); ok {
			b.ItemsFound = append(b.ItemsFound, FoundItem{Item: p.Item, Tier: p.Tier, Kept: p.Kept})
		}

	case event.PlayerLevelUp:
		p, err := event.DecodePayload[event.PlayerLevelUpPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		l.totals.Player = p.Player
		l.totals.Level = p.NewLevel

	case event.BattleEnded:
		p, err := event.DecodePayload[event.BattleEndedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		l.recordEnd(p)
		logger.FromContext(ctx).Debug(LogMsgBattleRecorded, "battle_id", p.BattleID, "outcome", p.Outcome)
	}
	return nil
}

// recordEnd closes a battle. Caller must hold the write lock.
func (l *BattleLog) recordEnd(p event.BattleEndedPayloadV1) {
	l.totals.Battles++
	l.totals.Experience += p.ExperienceGained
	switch p.Outcome {
	case domain.OutcomeVictory:
		l.totals.Victories++
	case domain.OutcomeDefeat:
		l.totals.Defeats++
	case domain.OutcomeFled:
		l.totals.Fled++
	}

	b, ok := l.battles.Peek(p.BattleID)
	if !ok {
		b = &BattleSummary{
			ID:            p.BattleID,
			Context:       p.Context,
			Region:        p.Region,
			MonstersSlain: []string{},
			ItemsFound:    []FoundItem{},
			StartedAt:     l.now(),
		}
		l.battles.Add(p.BattleID, b)
	}
	ended := l.now()
	b.Outcome = p.Outcome
	b.Rounds = p.Rounds
	b.ExperienceGained = p.ExperienceGained
	b.EndedAt = &ended
}

// Totals returns the lifetime counters
func (l *BattleLog) Totals() Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totals
}

// Get returns a copy of one battle
func (l *BattleLog) Get(id string) (BattleSummary, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.battles.Peek(id)
	if !ok {
		return BattleSummary{}, false
	}
	return b.clone(), true
}

// Recent returns up to limit battles, newest first
func (l *BattleLog) Recent(limit int) []BattleSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := l.battles.Keys()
	out := make([]BattleSummary, 0, min(limit, len(keys)))
	for i := len(keys) - 1; i >= 0 && len(out) < limit; i-- {
		if b, ok := l.battles.Peek(keys[i]); ok {
			out = append(out, b.clone())
		}
	}
	return out
}

// Len returns the number of battles currently held
func (l *BattleLog) Len() int {
	return l.battles.Len()
}

func (b *BattleSummary) clone() BattleSummary {
	c := *b
	c.MonstersSlain = append([]string{}, b.MonstersSlain...)
	c.ItemsFound = append([]FoundItem{}, b.ItemsFound...)
	if b.EndedAt != nil {
		ended := *b.EndedAt
		c.EndedAt = &ended
	}
	return c
}
