package world

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/logger"
	"github.com/osse101/middleearth/internal/town"
	"github.com/osse101/middleearth/internal/validation"
)

// ConfigFileName is the map file inside the content directory
const ConfigFileName = "world.yaml"

// Config is the on-disk shape of the map
type Config struct {
	Version     string        `yaml:"version"`
	Description string        `yaml:"description"`
	Start       string        `yaml:"start" validate:"required"`
	Locations   []LocationDef `yaml:"locations" validate:"required,min=1,dive"`
}

// LocationDef describes one location
type LocationDef struct {
	Key                   string               `yaml:"key" validate:"required"`
	Name                  string               `yaml:"name" validate:"required"`
	Description           string               `yaml:"description"`
	Region                string               `yaml:"region" validate:"required,region"`
	BattleProbability     float64              `yaml:"battle_probability" validate:"gte=0,lte=1"`
	BattleBonusDifficulty float64              `yaml:"battle_bonus_difficulty" validate:"gte=0"`
	Exits                 map[Direction]string `yaml:"exits" validate:"dive,keys,oneof=north south east west,endkeys,required"`
	Items                 []item.Def           `yaml:"items"`
	Town                  *TownDef             `yaml:"town"`
	Story                 *StoryDef            `yaml:"story"`
}

// StoryDef describes scripted battles fought on arrival
type StoryDef struct {
	Intro  string     `yaml:"intro"`
	Waves  []WaveDef  `yaml:"waves" validate:"required,min=1,dive"`
	Loot   []item.Def `yaml:"loot"`
	Ending string     `yaml:"ending"`
}

// WaveDef is one scripted battle
type WaveDef struct {
	Text   string     `yaml:"text"`
	Spawns []SpawnDef `yaml:"spawns" validate:"required,min=1,dive"`
}

// SpawnDef names a species and how many of it to spawn
type SpawnDef struct {
	Species string `yaml:"species" validate:"required"`
	Count   int    `yaml:"count" validate:"gte=1"`
}

// TownDef describes a settlement
type TownDef struct {
	Name        string   `yaml:"name" validate:"required"`
	Description string   `yaml:"description"`
	Inn         *InnDef  `yaml:"inn"`
	Shop        *ShopDef `yaml:"shop"`
}

// InnDef describes an inn
type InnDef struct {
	Name string          `yaml:"name" validate:"required"`
	Cost decimal.Decimal `yaml:"cost"`
}

// ShopDef describes a shop and its starting stock
type ShopDef struct {
	Name  string     `yaml:"name" validate:"required"`
	Items []item.Def `yaml:"items"`
}

// Load reads and validates a map file
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read world file %s: %w", cleanPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", domain.ErrInvalidConfig, cleanPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", cleanPath, err)
	}
	return &cfg, nil
}

// Validate checks field constraints and that every exit leads somewhere
func (c *Config) Validate() error {
	if err := validation.Structs().ValidateStruct(c); err != nil {
		return err
	}

	keys := make(map[string]struct{}, len(c.Locations))
	for _, loc := range c.Locations {
		if _, dup := keys[loc.Key]; dup {
			return fmt.Errorf("%w: duplicate location %q", domain.ErrInvalidConfig, loc.Key)
		}
		keys[loc.Key] = struct{}{}
	}
	if _, ok := keys[c.Start]; !ok {
		return fmt.Errorf("%w: start location %q is not defined", domain.ErrInvalidConfig, c.Start)
	}

	for _, loc := range c.Locations {
		for dir, target := range loc.Exits {
			if _, ok := keys[target]; !ok {
				return fmt.Errorf("%w: %s exit %s leads to unknown location %q", domain.ErrInvalidConfig, loc.Key, dir, target)
			}
		}
		if err := validateDefs(loc.Key, loc.Items); err != nil {
			return err
		}
		if loc.Story != nil {
			if err := validateDefs(loc.Key, loc.Story.Loot); err != nil {
				return err
			}
		}
		if loc.Town != nil {
			if loc.Town.Inn != nil && loc.Town.Inn.Cost.IsNegative() {
				return fmt.Errorf("%w: %s inn cost must not be negative", domain.ErrInvalidConfig, loc.Key)
			}
			if loc.Town.Shop != nil {
				if err := validateDefs(loc.Key, loc.Town.Shop.Items); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateDefs(where string, defs []item.Def) error {
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
	}
	return nil
}

// Build instantiates the world. Every location gets fresh item instances.
func (c *Config) Build() (*World, error) {
	w := &World{
		start:     c.Start,
		locations: make(map[string]*Location, len(c.Locations)),
	}
	for _, def := range c.Locations {
		region, err := domain.ParseRegion(def.Region)
		if err != nil {
			return nil, fmt.Errorf("location %s: %w", def.Key, err)
		}

		exits := make(map[Direction]string, len(def.Exits))
		for dir, target := range def.Exits {
			exits[dir] = target
		}

		w.locations[def.Key] = &Location{
			key:               def.Key,
			name:              def.Name,
			description:       def.Description,
			region:            region,
			battleProbability: def.BattleProbability,
			bonusDifficulty:   def.BattleBonusDifficulty,
			exits:             exits,
			items:             item.NewSet(buildItems(def.Items)...),
			town:              def.Town.build(),
			story:             def.Story.build(),
		}
	}
	return w, nil
}

func (t *TownDef) build() *town.Town {
	if t == nil {
		return nil
	}
	out := &town.Town{Name: t.Name, Description: t.Description}
	if t.Inn != nil {
		out.Inn = &town.Inn{Name: t.Inn.Name, Cost: t.Inn.Cost}
	}
	if t.Shop != nil {
		out.Shop = town.NewShop(t.Shop.Name, buildItems(t.Shop.Items)...)
	}
	return out
}

func (s *StoryDef) build() *Story {
	if s == nil {
		return nil
	}
	out := &Story{Intro: s.Intro, Ending: s.Ending, Loot: buildItems(s.Loot)}
	for _, w := range s.Waves {
		wave := Wave{Text: w.Text}
		for _, sp := range w.Spawns {
			wave.Spawns = append(wave.Spawns, Spawn{Species: sp.Species, Count: sp.Count})
		}
		out.Waves = append(out.Waves, wave)
	}
	return out
}

func buildItems(defs []item.Def) []*item.Item {
	items := make([]*item.Item, 0, len(defs))
	for _, d := range defs {
		items = append(items, d.Build())
	}
	return items
}

// LoadWorld loads, validates and builds the map file
func LoadWorld(ctx context.Context, path string) (*World, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	w, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("World loaded", "path", path, "locations", w.Len(), "start", cfg.Start)
	return w, nil
}
