package battle

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/logger"
	"github.com/osse101/middleearth/internal/monster"
	"github.com/osse101/middleearth/internal/validation"
)

// Config holds the tunable battle rules
type Config struct {
	RunProbability float64 `json:"run_probability" validate:"gte=0,lte=1"`
	LowLevelCap    int     `json:"low_level_cap" validate:"gte=1"`
}

// DefaultConfig returns the standard battle rules
func DefaultConfig() Config {
	return Config{
		RunProbability: DefaultRunProbability,
		LowLevelCap:    DefaultLowLevelCap,
	}
}

// Engine runs battles between one player and a group of monsters.
// It owns no game state between battles apart from the unique item pools.
type Engine struct {
	config   Config
	actions  ActionProvider
	monsters MonsterSource
	pools    *item.Pools
	rng      *rand.Rand
	narrator Narrator
	bus      event.Bus
}

// Option configures an Engine
type Option func(*Engine)

// WithMonsterSource sets the factory used for random encounters
func WithMonsterSource(src MonsterSource) Option {
	return func(e *Engine) { e.monsters = src }
}

// WithItemPools sets the unique item pools rolled after random victories
func WithItemPools(pools *item.Pools) Option {
	return func(e *Engine) { e.pools = pools }
}

// WithRand sets the random source
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithNarrator sets where battle text goes
func WithNarrator(n Narrator) Option {
	return func(e *Engine) { e.narrator = n }
}

// WithEventBus sets the bus battle events are published to
func WithEventBus(bus event.Bus) Option {
	return func(e *Engine) { e.bus = bus }
}

// NewEngine creates a battle engine
func NewEngine(cfg Config, actions ActionProvider, opts ...Option) (*Engine, error) {
	if actions == nil {
		return nil, domain.ErrActionProviderNil
	}
	if err := validation.Structs().ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("battle config: %w", err)
	}

	e := &Engine{
		config:   cfg,
		actions:  actions,
		narrator: nopNarrator{},
		bus:      event.NopBus{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
		e.rng = rand.New(rand.NewSource(1))
	}
	if e.narrator == nil {
		e.narrator = nopNarrator{}
	}
	if e.bus == nil {
		e.bus = event.NopBus{}
	}
	return e, nil
}

// Config returns the engine's rules
func (e *Engine) Config() Config {
	return e.config
}

// battle is the per-run state
type battle struct {
	ctx    context.Context
	player Combatant
	active []*monster.Monster
	region domain.Region
	result Result
	fled   bool
}

// Run fights a battle to completion.
// With a random context and no monsters, the encounter is generated from the player's location.
// The supplied slice is never modified; monsters in it are damaged in place.
// An error is returned only when the encounter cannot be set up or the action provider fails.
func (e *Engine) Run(ctx context.Context, p Combatant, encounter domain.EncounterContext, monsters []*monster.Monster) (Result, error) {
	id := logger.GenerateBattleID()
	ctx = logger.WithBattleID(ctx, id)
	log := logger.FromContext(ctx)

	b := &battle{
		ctx:    ctx,
		player: p,
		result: Result{ID: id, Context: encounter},
	}
	if loc := p.Location(); loc != nil {
		b.region = loc.Region()
		b.result.BonusDifficulty = loc.BattleBonusDifficulty()
	}

	if monsters == nil && encounter == domain.ContextRandom {
		generated, err := e.generate(p)
		if err != nil {
			return b.result, err
		}
		monsters = generated
	}
	for _, m := range monsters {
		if m != nil && !m.IsDead() {
			b.active = append(b.active, m)
		}
	}

	log.Info(LogMsgBattleStarted,
		"context", encounter,
		"region", b.region,
		"monsters", len(b.active),
		"bonus_difficulty", b.result.BonusDifficulty)
	e.publish(ctx, event.NewBattleStartedEvent(event.BattleStartedPayloadV1{
		BattleID:        id,
		Context:         encounter,
		Region:          b.region,
		MonsterCount:    len(b.active),
		BonusDifficulty: b.result.BonusDifficulty,
	}))
	e.announce(b, encounter)

	for len(b.active) > 0 && !p.IsDead() {
		b.result.Rounds++
		action, err := e.nextAction(b)
		if err != nil {
			log.Warn(LogMsgBattleAborted, "round", b.result.Rounds, "error", err)
			return b.result, fmt.Errorf("battle %s round %d: %w", id, b.result.Rounds, err)
		}

		log.Debug(LogMsgRound, "round", b.result.Rounds, "action", action, "hp", p.HP(), "monsters", len(b.active))

		switch action {
		case domain.ActionFight:
			e.fight(b)
		case domain.ActionRun:
			if e.rng.Float64() < e.config.RunProbability {
				b.fled = true
				e.say(ctx, MsgRunSuccess)
			} else {
				e.say(ctx, MsgRunFailed)
			}
		}
		if b.fled {
			break
		}

		e.retaliate(b)
	}

	switch {
	case b.fled:
		b.result.Outcome = domain.OutcomeFled
	case p.IsDead():
		b.result.Outcome = domain.OutcomeDefeat
		e.say(ctx, MsgDefeat)
	default:
		b.result.Outcome = domain.OutcomeVictory
		if b.result.Rounds > 0 {
			e.say(ctx, MsgVictory)
		}
		if encounter == domain.ContextRandom {
			e.findItems(b)
		}
	}

	log.Info(LogMsgBattleEnded,
		"outcome", b.result.Outcome,
		"rounds", b.result.Rounds,
		"experience", b.result.ExperienceGained,
		"slain", len(b.result.MonstersSlain),
		"items", len(b.result.ItemsFound))
	e.publish(ctx, event.NewBattleEndedEvent(event.BattleEndedPayloadV1{
		BattleID:         id,
		Context:          encounter,
		Region:           b.region,
		Outcome:          b.result.Outcome,
		Rounds:           b.result.Rounds,
		ExperienceGained: b.result.ExperienceGained,
		MonstersSlain:    len(b.result.MonstersSlain),
	}))

	return b.result, nil
}

func (e *Engine) generate(p Combatant) ([]*monster.Monster, error) {
	loc := p.Location()
	if loc == nil {
		return nil, domain.ErrNoLocation
	}
	if e.monsters == nil {
		return nil, domain.ErrMonsterSourceNil
	}
	count := e.monsters.Count(loc.Region())
	monsters, err := e.monsters.GetMonsters(count, loc.Region(), loc.BattleBonusDifficulty())
	if err != nil {
		return nil, fmt.Errorf("failed to generate encounter in %s: %w", loc.Name(), err)
	}
	return monsters, nil
}

// nextAction asks until the provider returns a recognised action
func (e *Engine) nextAction(b *battle) (domain.Action, error) {
	prompt := Prompt{
		Round:    b.result.Rounds,
		Text:     PromptText,
		PlayerHP: b.player.HP(),
		MaxHP:    b.player.MaxHP(),
		Monsters: make([]MonsterView, 0, len(b.active)),
	}
	for _, m := range b.active {
		prompt.Monsters = append(prompt.Monsters, MonsterView{Name: m.Name, HP: m.HP()})
	}

	for {
		if err := b.ctx.Err(); err != nil {
			return "", err
		}
		action, err := e.actions.NextAction(b.ctx, prompt)
		if err == nil {
			switch action {
			case domain.ActionFight, domain.ActionRun:
				return action, nil
			}
			err = domain.ErrInvalidAction
		}
		if !isInvalidAction(err) {
			return "", err
		}
		logger.FromContext(b.ctx).Debug(LogMsgInvalidAction, "action", action)
		e.say(b.ctx, MsgInvalidAction)
	}
}

// fight makes one attack on the first surviving monster
func (e *Engine) fight(b *battle) {
	target := b.active[0]
	damage := b.player.Attack(target)
	e.say(b.ctx, fmt.Sprintf(MsgPlayerHits, target.Name, damage))

	if !target.IsDead() {
		return
	}
	b.active = b.active[1:]
	e.slay(b, target)
}

func (e *Engine) slay(b *battle, m *monster.Monster) {
	if m.DeathText != "" {
		e.say(b.ctx, m.DeathText)
	} else {
		e.say(b.ctx, fmt.Sprintf(MsgMonsterFalls, m.Name))
	}

	xp := m.Experience()
	oldLevel := b.player.Level()
	levels := b.player.IncreaseExperience(xp)
	b.result.ExperienceGained += xp
	b.result.LevelsGained += levels
	b.result.MonstersSlain = append(b.result.MonstersSlain, m.Name)

	e.say(b.ctx, fmt.Sprintf(MsgExperience, xp))
	e.publish(b.ctx, event.NewMonsterSlainEvent(b.result.ID, m.Name, xp))

	if levels > 0 {
		e.say(b.ctx, fmt.Sprintf(MsgLevelUp, b.player.Level()))
		e.publish(b.ctx, event.NewPlayerLevelUpEvent(b.player.Name(), oldLevel, b.player.Level()))
	}
}

// retaliate lets every surviving monster hit the player in order, stopping at death
func (e *Engine) retaliate(b *battle) {
	for _, m := range b.active {
		if b.player.IsDead() {
			return
		}
		damage := m.Attack(b.player)
		if m.AttackText != "" {
			e.say(b.ctx, fmt.Sprintf("%s (%d)", m.AttackText, damage))
		} else {
			e.say(b.ctx, fmt.Sprintf(MsgMonsterHits, m.Name, damage))
		}
	}
	e.say(b.ctx, fmt.Sprintf(MsgPlayerStatus, b.player.HP(), b.player.MaxHP()))
}

func (e *Engine) announce(b *battle, encounter domain.EncounterContext) {
	n := len(b.active)
	if n == 0 {
		return
	}
	noun := monsterPlural
	if n == 1 {
		noun = monsterSingular
	}
	format := MsgRandomBattle
	if encounter == domain.ContextStory {
		format = MsgStoryBattle
	}
	e.say(b.ctx, fmt.Sprintf(format, n, noun))
}

func (e *Engine) say(ctx context.Context, text string) {
	e.narrator.Narrate(ctx, Line{Text: text})
}

// publish never fails a battle; handler errors are only logged
func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if err := e.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
