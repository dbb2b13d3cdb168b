package battle

import (
	"context"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/monster"
	"github.com/osse101/middleearth/internal/player"
)

// Prompt is what the engine shows the player before each action
type Prompt struct {
	Round    int
	Text     string
	PlayerHP int
	MaxHP    int
	Monsters []MonsterView
}

// MonsterView is a read-only snapshot of a surviving monster
type MonsterView struct {
	Name string
	HP   int
}

// ActionProvider supplies the player's choice each round.
// Returning domain.ErrInvalidAction makes the engine ask again; any other error aborts the battle.
type ActionProvider interface {
	NextAction(ctx context.Context, prompt Prompt) (domain.Action, error)
}

// Line is one piece of battle narration
type Line struct {
	Text string
}

// Narrator receives battle narration
type Narrator interface {
	Narrate(ctx context.Context, line Line)
}

// MonsterSource builds monster groups for random encounters
type MonsterSource interface {
	GetMonsters(count int, region domain.Region, bonusDifficulty float64) ([]*monster.Monster, error)
	Count(region domain.Region) int
}

// Combatant is the player surface the engine drives
type Combatant interface {
	Name() string
	Location() domain.Location
	Level() int
	HP() int
	MaxHP() int
	IsDead() bool
	Attack(target player.Target) int
	TakeAttack(amount int) int
	IncreaseExperience(amount int) int
	AddToInventory(it *item.Item) bool
}

type nopNarrator struct{}

func (nopNarrator) Narrate(context.Context, Line) {}
