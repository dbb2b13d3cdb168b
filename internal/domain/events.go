package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "battle.ended")
const (
	// EventTypeBattleStarted is published once the monster list for a battle is settled
	EventTypeBattleStarted = "battle.started"

	// EventTypeBattleEnded is published with the final result of a battle
	EventTypeBattleEnded = "battle.ended"

	// EventTypeMonsterSlain is published each time the player kills a monster
	EventTypeMonsterSlain = "monster.slain"

	// EventTypePlayerLevelUp is published when experience pushes the player past a level threshold
	EventTypePlayerLevelUp = "player.level_up"

	// EventTypeItemFound is published when the item-find roll grants a unique item
	EventTypeItemFound = "item.found"
)
