package bootstrap

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/osse101/middleearth/internal/battle"
	"github.com/osse101/middleearth/internal/config"
	"github.com/osse101/middleearth/internal/console"
	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/player"
)

// BuildGame wires a console game: the console is both the battle prompt and
// its narrator, the engine shares rng with the monster factory, and the
// factory also spawns scripted waves.
func BuildGame(cfg *config.Config, content *Content, bus event.Bus, rng *rand.Rand, in io.Reader, out io.Writer) (*console.Game, error) {
	c := console.New(in, out)

	engine, err := battle.NewEngine(
		battle.Config{
			RunProbability: cfg.RunProbability,
			LowLevelCap:    cfg.LowLevelUniqueCap,
		},
		c,
		battle.WithMonsterSource(content.Monsters),
		battle.WithItemPools(content.Items),
		battle.WithRand(rng),
		battle.WithNarrator(c),
		battle.WithEventBus(bus),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEngine, err)
	}

	p := player.New(cfg.PlayerName, content.World.Start())
	return console.NewGame(c, content.World, p, engine, console.WithSpawner(content.Monsters)), nil
}
