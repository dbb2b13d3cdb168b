package monster

import (
	"encoding/json"
	"fmt"
	"math"
)

// Target is anything a monster can hit
type Target interface {
	TakeAttack(amount int) int
}

// Stats are the three numbers every species is defined by.
// In content files they are written as [hp, attack, experience].
type Stats struct {
	HP         int
	Attack     int
	Experience int
}

// UnmarshalJSON decodes the [hp, attack, experience] triple
func (s *Stats) UnmarshalJSON(data []byte) error {
	var triple []int
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("stats must be [hp, attack, experience]: %w", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("stats must have exactly 3 values, got %d", len(triple))
	}
	s.HP, s.Attack, s.Experience = triple[0], triple[1], triple[2]
	return nil
}

// MarshalJSON encodes the stats as [hp, attack, experience]
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int{s.HP, s.Attack, s.Experience})
}

// Scale multiplies every stat by (1 + bonus), rounding to the nearest integer.
// Negative bonuses are treated as zero.
func (s Stats) Scale(bonus float64) Stats {
	if bonus <= 0 {
		return s
	}
	factor := 1 + bonus
	scale := func(v int) int {
		return int(math.Round(float64(v) * factor))
	}
	return Stats{
		HP:         scale(s.HP),
		Attack:     scale(s.Attack),
		Experience: scale(s.Experience),
	}
}

// Monster is a single spawned enemy. hp is its remaining health; there is no separate max.
type Monster struct {
	Name        string
	Description string
	AttackText  string
	DeathText   string

	hp         int
	attack     int
	experience int
}

// New creates a monster with the given stats
func New(name, description string, stats Stats, attackText, deathText string) *Monster {
	m := &Monster{
		Name:        name,
		Description: description,
		AttackText:  attackText,
		DeathText:   deathText,
		hp:          stats.HP,
		attack:      stats.Attack,
		experience:  stats.Experience,
	}
	if m.hp < 0 {
		m.hp = 0
	}
	return m
}

func (m *Monster) HP() int { return m.hp }

// AttackPower is the damage the monster deals per hit
func (m *Monster) AttackPower() int { return m.attack }

// Experience is awarded to the player when the monster dies
func (m *Monster) Experience() int { return m.experience }

// Stats returns the monster's current numbers
func (m *Monster) Stats() Stats {
	return Stats{HP: m.hp, Attack: m.attack, Experience: m.experience}
}

// Attack hits the target for the monster's full attack power
func (m *Monster) Attack(target Target) int {
	return target.TakeAttack(m.attack)
}

// TakeAttack applies the full amount (monsters have no defense), flooring hp at zero
func (m *Monster) TakeAttack(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > m.hp {
		amount = m.hp
	}
	m.hp -= amount
	return amount
}

// IsDead reports whether hp has reached zero
func (m *Monster) IsDead() bool {
	return m.hp <= 0
}
