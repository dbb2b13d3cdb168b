package battle

import (
	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/item"
)

// FoundItem is a unique item rolled at the end of a random encounter
type FoundItem struct {
	Item *item.Item
	Tier item.Tier
	// Kept is false when the item did not fit the player's weight limit and stayed in the pool
	Kept bool
}

// Result summarises a finished battle
type Result struct {
	ID               string
	Outcome          domain.Outcome
	Context          domain.EncounterContext
	Rounds           int
	ExperienceGained int
	LevelsGained     int
	MonstersSlain    []string
	ItemsFound       []FoundItem
	BonusDifficulty  float64
}

// Won reports whether every monster was defeated
func (r Result) Won() bool {
	return r.Outcome == domain.OutcomeVictory
}

// Fled reports whether the player escaped
func (r Result) Fled() bool {
	return r.Outcome == domain.OutcomeFled
}
