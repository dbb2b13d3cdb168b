package domain

// Action is the player's choice at the battle prompt
type Action string

const (
	ActionFight Action = "fight"
	ActionRun   Action = "run"
)

// EncounterContext distinguishes wandering battles from scripted ones.
// Only random encounters derive monsters from the location and roll for unique items.
type EncounterContext string

const (
	ContextRandom EncounterContext = "random"
	ContextStory  EncounterContext = "story"
)

// Outcome is how a battle ended
type Outcome string

const (
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeFled    Outcome = "fled"
)

// Slot is an equip category. Each slot holds at most one item.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotArmor  Slot = "armor"
	SlotCharm  Slot = "charm"
)

// Location is the slice of a world location that battles care about
type Location interface {
	Name() string
	Region() Region
	// BattleProbability is the chance in [0,1] that moving here triggers a random encounter
	BattleProbability() float64
	// BattleBonusDifficulty scales spawned monster stats by (1 + bonus)
	BattleBonusDifficulty() float64
}
