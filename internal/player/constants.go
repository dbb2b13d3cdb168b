package player

// Starting values for a new character
const (
	DefaultLevel       = 1
	DefaultExperience  = 0
	DefaultMaxHP       = 20
	DefaultAttack      = 10
	DefaultMoney       = 20
	DefaultWeightLimit = 40
)

// Leveling formula constants.
// Cumulative XP to reach level N+1 = sum over i in 1..N of floor(BaseXP * i^LevelExponent)
const (
	BaseXP         = 14.0
	LevelExponent  = 1.5
	MaxLevel       = 100
	HPPerLevel     = 29
	AttackPerLevel = 5
)

// Unequip outcome messages
const (
	MsgUnequipped  = "%s unequipped"
	MsgNotEquipped = "%s is not equipped"
)
