package monster

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/logger"
	"github.com/osse101/middleearth/internal/validation"
)

// Config represents the JSON configuration for species and spawn tables
type Config struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Species     []SpeciesDef `json:"species"`
	Regions     []RegionDef  `json:"regions"`
}

// SpeciesDef is one species entry
type SpeciesDef struct {
	Key         string `json:"key" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	AttackText  string `json:"attack_text"`
	DeathText   string `json:"death_text"`
	Stats       Stats  `json:"stats"`
}

// RegionDef is one region's count range and spawn table
type RegionDef struct {
	Region string       `json:"region" validate:"required,region"`
	Count  CountRange   `json:"count"`
	Spawns Distribution `json:"spawns" validate:"min=1,dive"`
}

// Load reads, schema-checks and parses a monsters JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := validation.NewSchemaValidator().ValidateBytes(data, validation.MonstersSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the species and region definitions
func (c *Config) Validate() error {
	species := make(map[string]bool, len(c.Species))
	for _, def := range c.Species {
		if species[def.Key] {
			return fmt.Errorf(ErrFmtDuplicateSpecies, domain.ErrInvalidConfig, def.Key)
		}
		species[def.Key] = true

		if err := validation.Structs().ValidateStruct(def); err != nil {
			return fmt.Errorf(ErrFmtSpeciesInvalid, domain.ErrInvalidConfig, def.Key, err)
		}
		if def.Stats.HP < 0 || def.Stats.Attack < 0 || def.Stats.Experience < 0 {
			return fmt.Errorf(ErrFmtSpeciesInvalid, domain.ErrInvalidConfig, def.Key, "stats must not be negative")
		}
	}

	regions := make(map[domain.Region]bool, len(c.Regions))
	for _, def := range c.Regions {
		if err := validation.Structs().ValidateStruct(def); err != nil {
			return fmt.Errorf(ErrFmtRegionInvalid, domain.ErrInvalidConfig, def.Region, err)
		}

		region, err := domain.ParseRegion(def.Region)
		if err != nil {
			return err
		}
		if regions[region] {
			return fmt.Errorf(ErrFmtDuplicateRegion, domain.ErrInvalidConfig, region)
		}
		regions[region] = true

		if err := def.Spawns.Validate(); err != nil {
			return fmt.Errorf("region %s: %w", region, err)
		}
	}

	return nil
}

// FactoryConfig converts the file into a factory configuration using the given rng
func (c *Config) FactoryConfig(rng *rand.Rand) (FactoryConfig, error) {
	species := make([]*Species, 0, len(c.Species))
	for _, def := range c.Species {
		species = append(species, &Species{
			Key:         def.Key,
			Name:        def.Name,
			Description: def.Description,
			AttackText:  def.AttackText,
			DeathText:   def.DeathText,
			Stats:       def.Stats,
		})
	}

	regions := make(map[domain.Region]RegionTable, len(c.Regions))
	for _, def := range c.Regions {
		region, err := domain.ParseRegion(def.Region)
		if err != nil {
			return FactoryConfig{}, err
		}
		regions[region] = RegionTable{Count: def.Count, Spawns: def.Spawns}
	}

	return FactoryConfig{
		Catalog: NewCatalog(species...),
		Regions: regions,
		Rand:    rng,
	}, nil
}

// LoadFactory reads the monsters file and builds a factory drawing from rng
func LoadFactory(ctx context.Context, path string, rng *rand.Rand) (*Factory, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	factoryCfg, err := cfg.FactoryConfig(rng)
	if err != nil {
		return nil, err
	}

	factory, err := NewFactory(factoryCfg)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgMonstersLoaded,
		"path", path,
		"species", factoryCfg.Catalog.Len(),
		"regions", len(factoryCfg.Regions))
	return factory, nil
}
