package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/middleearth/internal/battle"
	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/logger"
	"github.com/osse101/middleearth/internal/monster"
	"github.com/osse101/middleearth/internal/player"
	"github.com/osse101/middleearth/internal/world"
)

// Game is the interactive command loop
type Game struct {
	console  *Console
	world    *world.World
	player   *player.Player
	engine   *battle.Engine
	commands *Registry
	spawner  Spawner
	here     *world.Location
	over     bool
}

// Spawner builds the monsters of a scripted wave
type Spawner interface {
	Spawn(speciesKey string, n int) ([]*monster.Monster, error)
}

// GameOption configures a Game
type GameOption func(*Game)

// WithSpawner enables scripted battles. Without one, scripted locations
// behave like any other.
func WithSpawner(s Spawner) GameOption {
	return func(g *Game) {
		g.spawner = s
	}
}

// NewGame places the player at the world's start
func NewGame(c *Console, w *world.World, p *player.Player, engine *battle.Engine, opts ...GameOption) *Game {
	g := &Game{
		console:  c,
		world:    w,
		player:   p,
		engine:   engine,
		commands: defaultCommands(),
		here:     w.Start(),
	}
	for _, opt := range opts {
		opt(g)
	}
	p.MoveTo(g.here)
	return g
}

// Over reports whether the player quit or died
func (g *Game) Over() bool {
	return g.over
}

// Here returns the player's current location
func (g *Game) Here() *world.Location {
	return g.here
}

// Run reads commands until the player quits, dies or input ends
func (g *Game) Run(ctx context.Context) error {
	g.console.Printf(MsgWelcome, g.player.Name())
	g.describe()

	for !g.over {
		line, err := g.console.ReadLine(CommandPrompt)
		if errors.Is(err, domain.ErrInvalidAction) {
			g.console.Println(MsgLineTooLong)
			continue
		}
		if err == nil {
			err = g.Execute(ctx, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}

	s := g.player.Stats()
	logger.FromContext(ctx).Info(LogMsgGameEnded, "player", s.Name, "level", s.Level, "experience", s.Experience, "dead", g.player.IsDead())
	return nil
}

// Execute runs one command line. Only input and content failures are returned;
// everything the player did wrong is printed.
func (g *Game) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	logger.FromContext(ctx).Debug(LogMsgCommand, "command", name, "arg", arg)

	if dir, ok := world.ParseDirection(name); ok && arg == "" {
		return g.move(ctx, dir)
	}

	cmd, ok := g.commands.Get(name)
	if !ok {
		g.console.Printf(MsgUnknownCommand, name)
		return nil
	}
	if cmd.NeedsArg && arg == "" {
		g.console.Printf(MsgUsage, cmd.Usage)
		return nil
	}
	return cmd.Run(ctx, g, arg)
}

func (g *Game) move(ctx context.Context, dir world.Direction) error {
	next, err := g.world.Move(g.here, dir)
	if errors.Is(err, domain.ErrNoExit) {
		g.console.Printf(MsgNoExit, dir)
		return nil
	}
	if err != nil {
		return err
	}

	g.here = next
	g.player.MoveTo(next)
	logger.FromContext(ctx).Debug(LogMsgMoved, "to", next.Key(), "region", next.Region())
	g.describe()

	if story, ok := next.Story(); ok && !story.Done() && g.spawner != nil {
		return g.playStory(ctx, story)
	}

	res, fought, err := g.engine.MaybeEncounter(ctx, g.player)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgBattleFailed, "location", next.Key(), "error", err)
		return err
	}
	if fought {
		g.afterBattle(res)
	}
	return nil
}

// playStory fights every wave in order. Losing or fleeing any wave leaves the
// story to be replayed from the first wave on the next visit.
func (g *Game) playStory(ctx context.Context, story *world.Story) error {
	log := logger.FromContext(ctx)
	if story.Intro != "" {
		g.console.Println(story.Intro)
	}

	for i, wave := range story.Waves {
		if wave.Text != "" {
			g.console.Println(wave.Text)
		}

		var monsters []*monster.Monster
		for _, sp := range wave.Spawns {
			spawned, err := g.spawner.Spawn(sp.Species, sp.Count)
			if err != nil {
				return fmt.Errorf("%s wave %d: %w", g.here.Key(), i+1, err)
			}
			monsters = append(monsters, spawned...)
		}

		res, err := g.engine.Run(ctx, g.player, domain.ContextStory, monsters)
		if err != nil {
			log.Error(LogMsgBattleFailed, "location", g.here.Key(), "wave", i+1, "error", err)
			return err
		}
		if !res.Won() {
			g.afterBattle(res)
			return nil
		}
	}

	for _, it := range story.Loot {
		if g.player.AddToInventory(it) {
			g.console.Printf(MsgTaken, it.Name)
			continue
		}
		g.here.Items().Add(it)
		g.console.Printf(MsgLootLeft, it.Name)
	}
	story.Loot = nil
	story.Complete()

	if story.Ending != "" {
		g.console.Println(story.Ending)
	}
	log.Info(LogMsgStoryCompleted, "location", g.here.Key(), "waves", len(story.Waves))
	return nil
}

func (g *Game) afterBattle(res battle.Result) {
	switch res.Outcome {
	case domain.OutcomeDefeat:
		g.console.Println(MsgGameOver)
		g.over = true
	case domain.OutcomeFled:
		g.console.Printf(MsgFled, g.here.Name())
	}
}

func (g *Game) describe() {
	loc := g.here
	g.console.Println("")
	g.console.Println(loc.Name() + " " + fmt.Sprintf(MsgRegion, loc.Region().DisplayName()))
	if loc.Description() != "" {
		g.console.Println(loc.Description())
	}
	if t, ok := loc.Town(); ok {
		g.console.Printf(MsgTownHere, t.Name)
		if t.Inn != nil {
			g.console.Printf(MsgInnHere, t.Inn.Name, t.Inn.Cost)
		}
		if t.Shop != nil {
			g.console.Printf(MsgShopHere, t.Shop.Name)
		}
	}
	if items := loc.Items().Items(); len(items) > 0 {
		g.console.Printf(MsgOnGround, itemNames(items))
	}

	exits := loc.Exits()
	if len(exits) == 0 {
		g.console.Println(MsgNoExits)
		return
	}
	names := make([]string, 0, len(exits))
	for _, d := range exits {
		names = append(names, string(d))
	}
	g.console.Printf(MsgExits, strings.Join(names, ", "))
}

func itemNames(items []*item.Item) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return strings.Join(names, ", ")
}
