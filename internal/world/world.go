package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/item"
	"github.com/osse101/middleearth/internal/town"
)

// Direction is a compass exit
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists every direction in display order
var Directions = []Direction{North, South, East, West}

// ParseDirection accepts a full direction name or its first letter
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if s == string(d) || (len(s) == 1 && s[0] == d[0]) {
			return d, true
		}
	}
	return "", false
}

// Location is one space on the map. It satisfies domain.Location.
type Location struct {
	key               string
	name              string
	description       string
	region            domain.Region
	battleProbability float64
	bonusDifficulty   float64
	exits             map[Direction]string
	items             *item.Set
	town              *town.Town
	story             *Story
}

var _ domain.Location = (*Location)(nil)

func (l *Location) Key() string                    { return l.key }
func (l *Location) Name() string                   { return l.name }
func (l *Location) Description() string            { return l.description }
func (l *Location) Region() domain.Region          { return l.region }
func (l *Location) BattleProbability() float64     { return l.battleProbability }
func (l *Location) BattleBonusDifficulty() float64 { return l.bonusDifficulty }

// Town returns the settlement here, if any
func (l *Location) Town() (*town.Town, bool) {
	return l.town, l.town != nil
}

// Story returns the scripted battles fought here, if any
func (l *Location) Story() (*Story, bool) {
	return l.story, l.story != nil
}

// Items are the things lying on the ground
func (l *Location) Items() *item.Set {
	return l.items
}

// Exits returns the available directions in display order
func (l *Location) Exits() []Direction {
	out := make([]Direction, 0, len(l.exits))
	for _, d := range Directions {
		if _, ok := l.exits[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Spawn names a group of monsters in a scripted wave
type Spawn struct {
	Species string
	Count   int
}

// Wave is one scripted battle
type Wave struct {
	Text   string
	Spawns []Spawn
}

// Story is a sequence of waves that must all be won in one visit.
// Loot is granted once, when the last wave falls.
type Story struct {
	Intro  string
	Waves  []Wave
	Loot   []*item.Item
	Ending string
	done   bool
}

// Done reports whether the story has been completed
func (s *Story) Done() bool {
	return s.done
}

// Complete marks the story finished; it is not played again
func (s *Story) Complete() {
	s.done = true
}

// World is the location graph
type World struct {
	start     string
	locations map[string]*Location
}

// Start returns the starting location
func (w *World) Start() *Location {
	return w.locations[w.start]
}

// Get returns the location with the given key
func (w *World) Get(key string) (*Location, error) {
	loc, ok := w.locations[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, key)
	}
	return loc, nil
}

// Move follows the exit in the given direction
func (w *World) Move(from *Location, dir Direction) (*Location, error) {
	if from == nil {
		return nil, domain.ErrNoLocation
	}
	key, ok := from.exits[dir]
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", domain.ErrNoExit, dir, from.name)
	}
	return w.Get(key)
}

// Keys lists every location key, sorted
func (w *World) Keys() []string {
	keys := make([]string, 0, len(w.locations))
	for k := range w.locations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StorySpecies lists every monster species a scripted wave names, sorted
func (w *World) StorySpecies() []string {
	seen := make(map[string]struct{})
	for _, loc := range w.locations {
		if loc.story == nil {
			continue
		}
		for _, wave := range loc.story.Waves {
			for _, sp := range wave.Spawns {
				seen[sp.Species] = struct{}{}
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of locations
func (w *World) Len() int {
	return len(w.locations)
}
