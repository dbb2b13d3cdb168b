package item

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/middleearth/internal/domain"
)

// Set is an ordered collection of item references. It backs inventories,
// equipped sets, shop wares and location items.
type Set struct {
	items []*Item
}

// NewSet creates a set holding the given items in order
func NewSet(items ...*Item) *Set {
	s := &Set{items: make([]*Item, 0, len(items))}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add appends the item. Duplicate names are allowed.
func (s *Set) Add(it *Item) {
	if it == nil {
		return
	}
	s.items = append(s.items, it)
}

// Remove deletes the exact reference and reports whether it was present
func (s *Set) Remove(it *Item) bool {
	for i, candidate := range s.items {
		if candidate == it {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the exact reference is in the set
func (s *Set) Contains(it *Item) bool {
	for _, candidate := range s.items {
		if candidate == it {
			return true
		}
	}
	return false
}

// ContainsName reports whether any item has the given name (case-insensitive)
func (s *Set) ContainsName(name string) bool {
	_, ok := s.FindByName(name)
	return ok
}

// FindByName returns the first item whose name matches, case-insensitively
func (s *Set) FindByName(name string) (*Item, bool) {
	for _, it := range s.items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return nil, false
}

// FindBySlot returns the first item occupying the given slot
func (s *Set) FindBySlot(slot domain.Slot) (*Item, bool) {
	for _, it := range s.items {
		if itemSlot, ok := it.Slot(); ok && itemSlot == slot {
			return it, true
		}
	}
	return nil, false
}

// Weight sums the weight of every item
func (s *Set) Weight() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Weight)
	}
	return total
}

// Count returns the number of items
func (s *Set) Count() int {
	return len(s.items)
}

// Items returns a copy of the items in insertion order
func (s *Set) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}
