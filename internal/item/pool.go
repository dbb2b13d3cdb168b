package item

import (
	"math/rand"
)

// Tier names a unique-item pool
type Tier string

const (
	TierLow   Tier = "low"
	TierHigh  Tier = "high"
	TierElite Tier = "elite"
)

// Pool is a tier of findable unique items. Items leave the pool once granted.
type Pool struct {
	Tier Tier
	// Experience is the encounter experience at which the find chance peaks
	Experience int
	// MaxProbability is the find chance at or above Experience
	MaxProbability float64

	items *Set
}

// NewPool creates a pool with the given items
func NewPool(tier Tier, experience int, maxProbability float64, items ...*Item) *Pool {
	return &Pool{
		Tier:           tier,
		Experience:     experience,
		MaxProbability: maxProbability,
		items:          NewSet(items...),
	}
}

// Probability returns the chance of a find for the experience earned in one encounter.
// It grows linearly up to MaxProbability at Experience.
func (p *Pool) Probability(experience int) float64 {
	if p == nil || p.Experience <= 0 || experience <= 0 {
		return 0
	}
	ratio := float64(experience) / float64(p.Experience)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * p.MaxProbability
}

// Pick chooses a random remaining item without removing it
func (p *Pool) Pick(rnd *rand.Rand) (*Item, bool) {
	if p == nil || p.items.Count() == 0 {
		return nil, false
	}
	items := p.items.Items()
	return items[rnd.Intn(len(items))], true
}

// Take removes a granted item from the pool
func (p *Pool) Take(it *Item) bool {
	if p == nil {
		return false
	}
	return p.items.Remove(it)
}

// Len returns the number of items still findable
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return p.items.Count()
}

// Items returns the remaining items
func (p *Pool) Items() []*Item {
	if p == nil {
		return nil
	}
	return p.items.Items()
}

// Pools groups the three unique tiers
type Pools struct {
	Low   *Pool
	High  *Pool
	Elite *Pool
}

// All returns the non-nil pools in roll order: low, high, elite
func (p *Pools) All() []*Pool {
	if p == nil {
		return nil
	}
	var out []*Pool
	for _, pool := range []*Pool{p.Low, p.High, p.Elite} {
		if pool != nil {
			out = append(out, pool)
		}
	}
	return out
}
