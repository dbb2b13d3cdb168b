package monster

import (
	"fmt"
	"sort"

	"github.com/osse101/middleearth/internal/domain"
)

// Species is a data record for one kind of monster
type Species struct {
	Key         string
	Name        string
	Description string
	AttackText  string
	DeathText   string
	Stats       Stats
}

// Spawn creates a fresh monster with stats scaled by (1 + bonusDifficulty)
func (s *Species) Spawn(bonusDifficulty float64) *Monster {
	return New(s.Name, s.Description, s.Stats.Scale(bonusDifficulty), s.AttackText, s.DeathText)
}

// Catalog holds species by key
type Catalog struct {
	species map[string]*Species
}

// NewCatalog indexes the given species. Later duplicates replace earlier ones.
func NewCatalog(species ...*Species) *Catalog {
	c := &Catalog{species: make(map[string]*Species, len(species))}
	for _, s := range species {
		c.species[s.Key] = s
	}
	return c
}

// Get returns the species with the given key
func (c *Catalog) Get(key string) (*Species, error) {
	if c != nil {
		if s, ok := c.species[key]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSpecies, key)
}

// Keys returns every species key, sorted
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.species))
	for k := range c.species {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of species
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.species)
}
