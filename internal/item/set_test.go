package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/domain"
)

func TestSet_AddRemoveByReference(t *testing.T) {
	first := New("Lembas", "", d(0.5), d(2))
	second := New("Lembas", "", d(0.5), d(2))
	s := NewSet(first, second)

	require.Equal(t, 2, s.Count())
	assert.True(t, s.Contains(second))

	assert.True(t, s.Remove(second))
	assert.False(t, s.Contains(second))
	assert.True(t, s.Contains(first), "removing one reference must not remove a same-named item")

	assert.False(t, s.Remove(second), "removing an absent reference reports false")
	assert.Equal(t, 1, s.Count())
}

func TestSet_FindByName(t *testing.T) {
	rope := New("Elven Rope", "", d(1), d(4))
	s := NewSet(New("Lantern", "", d(1), d(1)), rope, New("Elven Rope", "", d(1), d(4)))

	found, ok := s.FindByName("elven rope")
	require.True(t, ok)
	assert.Same(t, rope, found, "first match wins")
	assert.True(t, s.ContainsName("LANTERN"))

	_, ok = s.FindByName("Palantir")
	assert.False(t, ok)
}

func TestSet_FindBySlot(t *testing.T) {
	sword := NewWeapon("Anduril", "", d(4), d(100), 12)
	s := NewSet(New("Map", "", d(0), d(0)), sword)

	found, ok := s.FindBySlot(domain.SlotWeapon)
	require.True(t, ok)
	assert.Same(t, sword, found)

	_, ok = s.FindBySlot(domain.SlotArmor)
	assert.False(t, ok)
}

func TestSet_Weight(t *testing.T) {
	s := NewSet()
	assert.True(t, s.Weight().IsZero())

	s.Add(New("Pack", "", d(2.5), d(1)))
	s.Add(New("Cloak", "", d(1.25), d(3)))
	s.Add(nil)

	assert.True(t, d(3.75).Equal(s.Weight()))
	assert.Equal(t, 2, s.Count())
}

func TestSet_ItemsIsCopy(t *testing.T) {
	s := NewSet(New("A", "", d(1), d(1)), New("B", "", d(1), d(1)))

	items := s.Items()
	items[0] = nil

	assert.Equal(t, "A", s.Items()[0].Name)
	assert.Equal(t, "B", s.Items()[1].Name)
}
