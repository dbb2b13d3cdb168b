package battle

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/monster"
	"github.com/osse101/middleearth/internal/player"
)

var errStop = errors.New("stop")

type testLocation struct {
	region      domain.Region
	probability float64
	bonus       float64
}

func (l testLocation) Name() string                   { return "Bree" }
func (l testLocation) Region() domain.Region          { return l.region }
func (l testLocation) BattleProbability() float64     { return l.probability }
func (l testLocation) BattleBonusDifficulty() float64 { return l.bonus }

// scripted replays a fixed list of responses, then returns errStop
type scripted struct {
	steps []step
	calls int
}

type step struct {
	action domain.Action
	err    error
}

func script(actions ...domain.Action) *scripted {
	s := &scripted{}
	for _, a := range actions {
		s.steps = append(s.steps, step{action: a})
	}
	return s
}

func (s *scripted) NextAction(context.Context, Prompt) (domain.Action, error) {
	if s.calls >= len(s.steps) {
		return "", errStop
	}
	st := s.steps[s.calls]
	s.calls++
	return st.action, st.err
}

type recorder struct {
	lines []string
}

func (r *recorder) Narrate(_ context.Context, line Line) {
	r.lines = append(r.lines, line.Text)
}

func (r *recorder) count(text string) int {
	n := 0
	for _, l := range r.lines {
		if l == text {
			n++
		}
	}
	return n
}

func newPlayer() *player.Player {
	return player.New("Frodo", testLocation{region: domain.RegionEriador})
}

func orc(name string, hp, attack, experience int) *monster.Monster {
	return monster.New(name, "", monster.Stats{HP: hp, Attack: attack, Experience: experience}, "", "")
}

func newEngine(t *testing.T, cfg Config, actions ActionProvider, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(42)))}, opts...) //nolint:gosec // G404: test rng
	e, err := NewEngine(cfg, actions, opts...)
	require.NoError(t, err)
	return e
}

func fullPools() *item.Pools {
	return &item.Pools{
		Low:   item.NewPool(item.TierLow, 1, 1, item.NewWeapon("Sting", "", decimal.NewFromInt(1), decimal.NewFromInt(5), 3)),
		High:  item.NewPool(item.TierHigh, 1, 1, item.NewArmor("Elven Cloak", "", decimal.NewFromInt(1), decimal.NewFromInt(5), 2)),
		Elite: item.NewPool(item.TierElite, 1, 1, item.NewCharm("The One Ring", "", decimal.NewFromInt(0), decimal.NewFromInt(0), 0, 5, 0)),
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("requires an action provider", func(t *testing.T) {
		_, err := NewEngine(DefaultConfig(), nil)
		assert.ErrorIs(t, err, domain.ErrActionProviderNil)
	})

	t.Run("rejects a run probability above one", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RunProbability = 2
		_, err := NewEngine(cfg, script())
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("rejects a zero level cap", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LowLevelCap = 0
		_, err := NewEngine(cfg, script())
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("defaults", func(t *testing.T) {
		e, err := NewEngine(DefaultConfig(), script(), WithNarrator(nil), WithEventBus(nil))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), e.Config())
		assert.NotNil(t, e.rng)
	})
}

func TestRun_EveryMonsterRetaliates(t *testing.T) {
	p := newPlayer()
	require.Equal(t, 20, p.HP())
	require.Zero(t, p.TotalDefense())

	monsters := []*monster.Monster{orc("A", 100, 2, 1), orc("B", 100, 2, 1), orc("C", 100, 2, 1)}
	e := newEngine(t, DefaultConfig(), script(domain.ActionFight))

	_, err := e.Run(context.Background(), p, domain.ContextStory, monsters)

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 14, p.HP())
	assert.Equal(t, 90, monsters[0].HP(), "only the first monster is attacked")
	assert.Equal(t, 100, monsters[1].HP())
}

func TestRun_DefeatStopsRetaliation(t *testing.T) {
	p := newPlayer()
	monsters := []*monster.Monster{orc("A", 100, 15, 1), orc("B", 100, 15, 1), orc("C", 100, 15, 1)}
	narr := &recorder{}
	e := newEngine(t, DefaultConfig(), script(domain.ActionFight), WithNarrator(narr))

	res, err := e.Run(context.Background(), p, domain.ContextStory, monsters)

	require.NoError(t, err)
	assert.Equal(t, 0, p.HP())
	assert.Equal(t, domain.OutcomeDefeat, res.Outcome)
	assert.False(t, res.Won())
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 1, narr.count(fmt.Sprintf(MsgMonsterHits, "A", 15)))
	assert.Equal(t, 1, narr.count(fmt.Sprintf(MsgMonsterHits, "B", 5)))
	assert.Zero(t, narr.count(fmt.Sprintf(MsgMonsterHits, "C", 0)))
	assert.Equal(t, 1, narr.count(MsgDefeat))
}

func TestRun_Flee(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RunProbability = 1
	p := newPlayer()
	monsters := []*monster.Monster{orc("A", 100, 5, 10)}
	e := newEngine(t, cfg, script(domain.ActionRun), WithItemPools(fullPools()))

	res, err := e.Run(context.Background(), p, domain.ContextRandom, monsters)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFled, res.Outcome)
	assert.True(t, res.Fled())
	assert.False(t, res.Won())
	assert.Equal(t, 20, p.HP(), "no retaliation after a successful run")
	assert.Zero(t, res.ExperienceGained)
	assert.Empty(t, res.ItemsFound)
	assert.Empty(t, p.Inventory())
}

func TestRun_FailedRunStillRetaliates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RunProbability = 0
	p := newPlayer()
	narr := &recorder{}
	e := newEngine(t, cfg, script(domain.ActionRun), WithNarrator(narr))

	_, err := e.Run(context.Background(), p, domain.ContextStory, []*monster.Monster{orc("A", 100, 3, 1)})

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 17, p.HP())
	assert.Equal(t, 1, narr.count(MsgRunFailed))
}

func TestRun_InvalidActionsArePromptedAgain(t *testing.T) {
	actions := new(MockActionProvider)
	actions.On("NextAction", mock.Anything, mock.Anything).Return(domain.Action(""), domain.ErrInvalidAction).Twice()
	actions.On("NextAction", mock.Anything, mock.Anything).Return(domain.Action("dance"), nil).Once()
	actions.On("NextAction", mock.Anything, mock.MatchedBy(func(p Prompt) bool {
		return p.Round == 1 && p.Text == PromptText && len(p.Monsters) == 1 && p.Monsters[0].Name == "A"
	})).Return(domain.ActionFight, nil).Once()

	narr := &recorder{}
	p := newPlayer()
	e := newEngine(t, DefaultConfig(), actions, WithNarrator(narr))

	res, err := e.Run(context.Background(), p, domain.ContextStory, []*monster.Monster{orc("A", 5, 1, 3)})

	require.NoError(t, err)
	assert.True(t, res.Won())
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 3, narr.count(MsgInvalidAction))
	actions.AssertNumberOfCalls(t, "NextAction", 4)
}

func TestRun_ProviderErrorAborts(t *testing.T) {
	boom := errors.New("input closed")
	actions := &scripted{steps: []step{{err: boom}}}
	e := newEngine(t, DefaultConfig(), actions)

	_, err := e.Run(context.Background(), newPlayer(), domain.ContextStory, []*monster.Monster{orc("A", 5, 1, 3)})

	assert.ErrorIs(t, err, boom)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := newEngine(t, DefaultConfig(), script(domain.ActionFight))

	_, err := e.Run(ctx, newPlayer(), domain.ContextStory, []*monster.Monster{orc("A", 5, 1, 3)})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_OneKillPerRound(t *testing.T) {
	p := newPlayer()
	monsters := []*monster.Monster{orc("A", 1, 1, 2), orc("B", 1, 1, 2)}
	e := newEngine(t, DefaultConfig(), script(domain.ActionFight, domain.ActionFight))

	res, err := e.Run(context.Background(), p, domain.ContextStory, monsters)

	require.NoError(t, err)
	assert.True(t, res.Won())
	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, 19, p.HP(), "B retaliates once after A falls")
	assert.Equal(t, []string{"A", "B"}, res.MonstersSlain)
	assert.Equal(t, 4, res.ExperienceGained)
	assert.Equal(t, 4, p.Experience())
	assert.Len(t, monsters, 2, "caller's slice is untouched")
}

func TestRun_ExperienceAndLevelUpEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	var got []event.Event
	record := func(_ context.Context, evt event.Event) error {
		got = append(got, evt)
		return nil
	}
	for _, typ := range []event.Type{event.BattleStarted, event.MonsterSlain, event.PlayerLevelUp, event.BattleEnded} {
		bus.Subscribe(typ, record)
	}

	p := newPlayer()
	e := newEngine(t, DefaultConfig(), script(domain.ActionFight), WithEventBus(bus))

	res, err := e.Run(context.Background(), p, domain.ContextStory, []*monster.Monster{orc("Troll", 5, 1, player.XPForLevel(3))})

	require.NoError(t, err)
	assert.Equal(t, 3, p.Level())
	assert.Equal(t, 2, res.LevelsGained)

	require.Len(t, got, 4)
	assert.Equal(t, event.BattleStarted, got[0].Type)
	assert.Equal(t, event.MonsterSlain, got[1].Type)
	assert.Equal(t, event.PlayerLevelUp, got[2].Type)
	assert.Equal(t, event.BattleEnded, got[3].Type)

	levelUp, err := event.DecodePayload[event.PlayerLevelUpPayloadV1](got[2].Payload)
	require.NoError(t, err)
	assert.Equal(t, event.PlayerLevelUpPayloadV1{Player: "Frodo", OldLevel: 1, NewLevel: 3}, levelUp)

	ended, err := event.DecodePayload[event.BattleEndedPayloadV1](got[3].Payload)
	require.NoError(t, err)
	assert.Equal(t, res.ID, ended.BattleID)
	assert.Equal(t, domain.OutcomeVictory, ended.Outcome)
	assert.Equal(t, 1, ended.MonstersSlain)
}

func TestRun_HandlerErrorsDoNotFailBattle(t *testing.T) {
	bus := event.NewMemoryBus()
	bus.Subscribe(event.BattleEnded, func(context.Context, event.Event) error { return errors.New("broken") })
	e := newEngine(t, DefaultConfig(), script(), WithEventBus(bus))

	res, err := e.Run(context.Background(), newPlayer(), domain.ContextStory, nil)

	require.NoError(t, err)
	assert.True(t, res.Won())
}

func TestRun_EmptyListIsImmediateVictory(t *testing.T) {
	actions := script()
	pools := fullPools()
	p := newPlayer()
	e := newEngine(t, DefaultConfig(), actions, WithItemPools(pools))

	res, err := e.Run(context.Background(), p, domain.ContextRandom, []*monster.Monster{})

	require.NoError(t, err)
	assert.True(t, res.Won())
	assert.Zero(t, res.Rounds)
	assert.Zero(t, actions.calls)
	assert.Empty(t, res.ItemsFound)
	assert.Equal(t, 1, pools.Elite.Len())
}

func TestRun_RandomEncounterFromLocation(t *testing.T) {
	factory, err := monster.NewFactory(monster.FactoryConfig{
		Catalog: monster.NewCatalog(&monster.Species{
			Key:   "orc",
			Name:  "Orc",
			Stats: monster.Stats{HP: 5, Attack: 1, Experience: 2},
		}),
		Regions: map[domain.Region]monster.RegionTable{
			domain.RegionEriador: {
				Count:  monster.CountRange{Min: 2, Max: 2},
				Spawns: monster.Distribution{{Species: "orc", Lower: 0, Upper: 1}},
			},
		},
		Rand: rand.New(rand.NewSource(7)), //nolint:gosec // G404: test rng
	})
	require.NoError(t, err)

	p := player.New("Sam", testLocation{region: domain.RegionEriador, bonus: 1})
	e := newEngine(t, DefaultConfig(), script(domain.ActionFight, domain.ActionFight), WithMonsterSource(factory))

	res, err := e.Run(context.Background(), p, domain.ContextRandom, nil)

	require.NoError(t, err)
	assert.True(t, res.Won())
	assert.Equal(t, 1.0, res.BonusDifficulty)
	assert.Equal(t, []string{"Orc", "Orc"}, res.MonstersSlain)
	assert.Equal(t, 8, res.ExperienceGained, "experience doubles with bonus difficulty 1")
	assert.Equal(t, 18, p.HP())
}

func TestRun_RandomEncounterSetupErrors(t *testing.T) {
	t.Run("no location", func(t *testing.T) {
		e := newEngine(t, DefaultConfig(), script())
		_, err := e.Run(context.Background(), player.New("Pippin", nil), domain.ContextRandom, nil)
		assert.ErrorIs(t, err, domain.ErrNoLocation)
	})

	t.Run("no monster source", func(t *testing.T) {
		e := newEngine(t, DefaultConfig(), script())
		_, err := e.Run(context.Background(), newPlayer(), domain.ContextRandom, nil)
		assert.ErrorIs(t, err, domain.ErrMonsterSourceNil)
	})
}

func TestRun_SkipsDeadMonsters(t *testing.T) {
	dead := orc("Dead", 1, 50, 9)
	dead.TakeAttack(1)
	actions := script()
	e := newEngine(t, DefaultConfig(), actions)

	res, err := e.Run(context.Background(), newPlayer(), domain.ContextStory, []*monster.Monster{dead, nil})

	require.NoError(t, err)
	assert.True(t, res.Won())
	assert.Zero(t, actions.calls)
}

func TestRun_Narration(t *testing.T) {
	narr := &recorder{}
	m := monster.New("Wight", "", monster.Stats{HP: 5, Attack: 1, Experience: 1}, "The wight claws at you", "The wight crumbles to dust")
	e := newEngine(t, DefaultConfig(), script(domain.ActionFight), WithNarrator(narr))

	_, err := e.Run(context.Background(), newPlayer(), domain.ContextRandom, []*monster.Monster{m})

	require.NoError(t, err)
	joined := strings.Join(narr.lines, "\n")
	assert.Contains(t, joined, fmt.Sprintf(MsgRandomBattle, 1, "monster"))
	assert.Contains(t, joined, fmt.Sprintf(MsgPlayerHits, "Wight", 5))
	assert.Contains(t, joined, "The wight crumbles to dust")
	assert.Contains(t, joined, MsgVictory)
}
