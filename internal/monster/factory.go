package monster

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/osse101/middleearth/internal/domain"
)

// FactoryConfig is everything a Factory needs; there is no package-level state
type FactoryConfig struct {
	Catalog *Catalog
	Regions map[domain.Region]RegionTable
	Rand    *rand.Rand
}

// Factory spawns monsters for regions using weighted random selection
type Factory struct {
	catalog *Catalog
	regions map[domain.Region]RegionTable
	rng     *rand.Rand
}

// NewFactory validates the config and creates a factory.
// A nil Rand is replaced with a source seeded from seed 1.
func NewFactory(cfg FactoryConfig) (*Factory, error) {
	if cfg.Catalog == nil || cfg.Catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: factory needs at least one species", domain.ErrInvalidConfig)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //nolint:gosec // G404: math/rand is acceptable for game mechanics
	}

	regions := make(map[domain.Region]RegionTable, len(cfg.Regions))
	for region, table := range cfg.Regions {
		if err := table.Spawns.Validate(); err != nil {
			return nil, fmt.Errorf("region %s: %w", region, err)
		}
		if table.Count.Min < 0 || table.Count.Max < table.Count.Min {
			return nil, fmt.Errorf("%w: region %s count range [%d, %d]",
				domain.ErrInvalidConfig, region, table.Count.Min, table.Count.Max)
		}
		for _, iv := range table.Spawns {
			if _, err := cfg.Catalog.Get(iv.Species); err != nil {
				return nil, fmt.Errorf("region %s: %w", region, err)
			}
		}

		spawns := make(Distribution, len(table.Spawns))
		copy(spawns, table.Spawns)
		regions[region] = RegionTable{Count: table.Count, Spawns: spawns}
	}

	return &Factory{
		catalog: cfg.Catalog,
		regions: regions,
		rng:     rng,
	}, nil
}

// GetMonsters draws count monsters for the region, scaling stats by (1 + bonusDifficulty).
// Monsters are returned in generation order.
func (f *Factory) GetMonsters(count int, region domain.Region, bonusDifficulty float64) ([]*Monster, error) {
	table, ok := f.regions[region]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRegion, region)
	}

	if count < 0 {
		count = 0
	}
	monsters := make([]*Monster, 0, count)
	for i := 0; i < count; i++ {
		u := f.rng.Float64()
		key, ok := table.Spawns.Pick(u)
		if !ok {
			return nil, fmt.Errorf("%w: region %s draw %g", domain.ErrDistributionGap, region, u)
		}

		species, err := f.catalog.Get(key)
		if err != nil {
			return nil, err
		}
		monsters = append(monsters, species.Spawn(bonusDifficulty))
	}

	return monsters, nil
}

// Count draws how many monsters a random encounter in the region spawns.
// Unknown regions spawn nothing.
func (f *Factory) Count(region domain.Region) int {
	table, ok := f.regions[region]
	if !ok {
		return 0
	}
	span := table.Count.Max - table.Count.Min
	if span <= 0 {
		return table.Count.Min
	}
	return table.Count.Min + f.rng.Intn(span+1)
}

// Spawn creates n unscaled monsters of one species, for scripted waves
func (f *Factory) Spawn(speciesKey string, n int) ([]*Monster, error) {
	species, err := f.catalog.Get(speciesKey)
	if err != nil {
		return nil, err
	}

	monsters := make([]*Monster, 0, n)
	for i := 0; i < n; i++ {
		monsters = append(monsters, species.Spawn(0))
	}
	return monsters, nil
}

// Regions lists the regions the factory can spawn in, sorted
func (f *Factory) Regions() []domain.Region {
	regions := make([]domain.Region, 0, len(f.regions))
	for r := range f.regions {
		regions = append(regions, r)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	return regions
}
