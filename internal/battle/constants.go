package battle

// Engine defaults
const (
	DefaultRunProbability = 0.5
	// DefaultLowLevelCap is the player level at which low-tier uniques stop appearing
	DefaultLowLevelCap = 15
)

// Player-facing text
const (
	PromptText = "Fight or run?"

	MsgRandomBattle  = "You are attacked by %d %s!"
	MsgStoryBattle   = "You face %d %s."
	MsgPlayerHits    = "You strike the %s for %d damage."
	MsgMonsterFalls  = "The %s falls."
	MsgExperience    = "You gain %d experience."
	MsgLevelUp       = "You are now level %d!"
	MsgRunSuccess    = "You escape."
	MsgRunFailed     = "You fail to get away."
	MsgMonsterHits   = "The %s hits you for %d damage."
	MsgPlayerStatus  = "HP: %d/%d"
	MsgInvalidAction = "Type 'fight' or 'run'."
	MsgVictory       = "You are victorious."
	MsgDefeat        = "You have been slain."
	MsgItemFound     = "You found %s!"
	MsgItemTooHeavy  = "You found %s, but cannot carry it."

	monsterSingular = "monster"
	monsterPlural   = "monsters"
)

// Log messages
const (
	LogMsgBattleStarted = "Battle started"
	LogMsgBattleEnded   = "Battle ended"
	LogMsgBattleAborted = "Battle aborted"
	LogMsgRound         = "Battle round"
	LogMsgInvalidAction = "Invalid battle action, prompting again"
	LogMsgPublishFailed = "Failed to publish battle event"
	LogMsgEncounterRoll = "Encounter roll"
	LogMsgItemFindRoll  = "Item find roll"
	LogMsgItemFindGated = "Low tier item find skipped for player level"
)
