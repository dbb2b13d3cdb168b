package item

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/middleearth/internal/domain"
)

// Kind tags the variant an Item carries
type Kind string

const (
	KindPlain  Kind = "plain"
	KindWeapon Kind = "weapon"
	KindArmor  Kind = "armor"
	KindPotion Kind = "potion"
	KindCharm  Kind = "charm"
)

// Item is a value object. Only the bonus fields matching Kind are meaningful.
type Item struct {
	Name        string
	Description string
	Weight      decimal.Decimal
	Cost        decimal.Decimal
	Kind        Kind

	Attack  int // weapon, charm
	Defense int // armor, charm
	HP      int // charm
	Healing int // potion
}

// New creates a plain item with no bonuses
func New(name, description string, weight, cost decimal.Decimal) *Item {
	return &Item{
		Name:        name,
		Description: description,
		Weight:      weight,
		Cost:        cost,
		Kind:        KindPlain,
	}
}

// NewWeapon creates a weapon granting an attack bonus when equipped
func NewWeapon(name, description string, weight, cost decimal.Decimal, attack int) *Item {
	it := New(name, description, weight, cost)
	it.Kind = KindWeapon
	it.Attack = nonNegative(attack)
	return it
}

// NewArmor creates armor granting a defense bonus when equipped
func NewArmor(name, description string, weight, cost decimal.Decimal, defense int) *Item {
	it := New(name, description, weight, cost)
	it.Kind = KindArmor
	it.Defense = nonNegative(defense)
	return it
}

// NewPotion creates a single-use healing potion
func NewPotion(name, description string, weight, cost decimal.Decimal, healing int) *Item {
	it := New(name, description, weight, cost)
	it.Kind = KindPotion
	it.Healing = nonNegative(healing)
	return it
}

// NewCharm creates a charm with fixed attack, defense and max hp bonuses
func NewCharm(name, description string, weight, cost decimal.Decimal, attack, defense, hp int) *Item {
	it := New(name, description, weight, cost)
	it.Kind = KindCharm
	it.Attack = nonNegative(attack)
	it.Defense = nonNegative(defense)
	it.HP = nonNegative(hp)
	return it
}

// Slot reports which equip slot the item occupies, if any
func (i *Item) Slot() (domain.Slot, bool) {
	switch i.Kind {
	case KindWeapon:
		return domain.SlotWeapon, true
	case KindArmor:
		return domain.SlotArmor, true
	case KindCharm:
		return domain.SlotCharm, true
	default:
		return "", false
	}
}

// IsPotion reports whether the item can be drunk
func (i *Item) IsPotion() bool {
	return i.Kind == KindPotion
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
