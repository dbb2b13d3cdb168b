package player

import (
	"math"
)

// XPForLevel returns the total experience needed to reach the given level.
// Level 1 needs none.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}

	cumulative := 0
	for i := 1; i < level && i < MaxLevel; i++ {
		cumulative += int(BaseXP * math.Pow(float64(i), LevelExponent))
	}
	return cumulative
}

// LevelForExperience returns the level reached with the given total experience
func LevelForExperience(experience int) int {
	level := DefaultLevel
	cumulative := 0

	for level < MaxLevel {
		cumulative += int(BaseXP * math.Pow(float64(level), LevelExponent))
		if cumulative > experience {
			break
		}
		level++
	}

	return level
}

// BaseMaxHPForLevel returns max hp before charm bonuses
func BaseMaxHPForLevel(level int) int {
	if level < DefaultLevel {
		level = DefaultLevel
	}
	return DefaultMaxHP + HPPerLevel*(level-DefaultLevel)
}

// BaseAttackForLevel returns attack before weapon and charm bonuses
func BaseAttackForLevel(level int) int {
	if level < DefaultLevel {
		level = DefaultLevel
	}
	return DefaultAttack + AttackPerLevel*(level-DefaultLevel)
}

// XPToNextLevel returns the experience still needed for the next level, or 0 at MaxLevel
func XPToNextLevel(experience int) int {
	level := LevelForExperience(experience)
	if level >= MaxLevel {
		return 0
	}
	return XPForLevel(level+1) - experience
}
