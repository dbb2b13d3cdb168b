package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/osse101/middleearth/internal/config"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/monster"
	"github.com/osse101/middleearth/internal/world"
)

// Content is everything read from CONTENT_DIR at startup
type Content struct {
	Monsters *monster.Factory
	Items    *item.Pools
	World    *world.World
}

// LoadContent loads, validates and builds monsters, item pools and the world map.
// The factory draws from rng so a fixed seed replays the same encounters.
func LoadContent(ctx context.Context, cfg *config.Config, rng *rand.Rand) (*Content, error) {
	slog.Info(LogMsgLoadingContent, "dir", cfg.ContentDir)

	factory, err := monster.LoadFactory(ctx, cfg.ContentPath(config.ContentFileMonsters), rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadMonsters, err)
	}

	pools, err := item.LoadPools(ctx, cfg.ContentPath(config.ContentFileItems))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	w, err := world.LoadWorld(ctx, cfg.ContentPath(config.ContentFileWorld))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadWorld, err)
	}
	// scripted waves name species from the monster file
	for _, key := range w.StorySpecies() {
		if _, err := factory.Spawn(key, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadWorld, err)
		}
	}

	slog.Info(LogMsgContentLoaded,
		"regions", len(factory.Regions()),
		"locations", w.Len())

	return &Content{Monsters: factory, Items: pools, World: w}, nil
}
