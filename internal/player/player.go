package player

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/item"
)

// Target is anything the player can hit
type Target interface {
	TakeAttack(amount int) int
}

// Player is the single mutable character aggregate.
// Derived stats are recomputed on every inventory or equipment change;
// hp always stays within [0, MaxHP()].
type Player struct {
	name     string
	location domain.Location

	level       int
	experience  int
	hp          int
	baseMaxHP   int
	baseAttack  int
	money       decimal.Decimal
	weightLimit decimal.Decimal

	inventory *item.Set
	equipped  *item.Set

	weaponAttack int
	armorDefense int
	charmAttack  int
	charmDefense int
	charmHP      int
}

// Stats is a read-only snapshot for display
type Stats struct {
	Name         string
	Level        int
	Experience   int
	XPToNext     int
	HP           int
	MaxHP        int
	Attack       int
	Defense      int
	WeaponAttack int
	ArmorDefense int
	CharmAttack  int
	CharmDefense int
	CharmHP      int
	Money        decimal.Decimal
	Weight       decimal.Decimal
	WeightLimit  decimal.Decimal
}

// New creates a level 1 character at the given location
func New(name string, location domain.Location) *Player {
	p := &Player{
		name:        name,
		location:    location,
		level:       DefaultLevel,
		experience:  DefaultExperience,
		money:       decimal.NewFromInt(DefaultMoney),
		weightLimit: decimal.NewFromInt(DefaultWeightLimit),
		inventory:   item.NewSet(),
		equipped:    item.NewSet(),
	}
	p.updateLevel()
	p.hp = p.MaxHP()
	return p
}

func (p *Player) Name() string              { return p.name }
func (p *Player) Location() domain.Location { return p.location }
func (p *Player) Level() int                { return p.level }
func (p *Player) Experience() int           { return p.experience }
func (p *Player) HP() int                   { return p.hp }
func (p *Player) Money() decimal.Decimal    { return p.money }

// WeightLimit is the maximum total inventory weight
func (p *Player) WeightLimit() decimal.Decimal { return p.weightLimit }

// SetWeightLimit changes the carrying capacity. Items already carried are kept.
func (p *Player) SetWeightLimit(limit decimal.Decimal) {
	if limit.IsNegative() {
		limit = decimal.Zero
	}
	p.weightLimit = limit
}

// MaxHP is base max hp plus charm hp
func (p *Player) MaxHP() int { return p.baseMaxHP + p.charmHP }

// TotalAttack is base attack plus weapon and charm bonuses
func (p *Player) TotalAttack() int { return p.baseAttack + p.weaponAttack + p.charmAttack }

// TotalDefense is armor plus charm defense
func (p *Player) TotalDefense() int { return p.armorDefense + p.charmDefense }

// Inventory returns the carried items in pickup order
func (p *Player) Inventory() []*item.Item { return p.inventory.Items() }

// Equipped returns the equipped items
func (p *Player) Equipped() []*item.Item { return p.equipped.Items() }

// InventoryWeight is the total weight carried
func (p *Player) InventoryWeight() decimal.Decimal { return p.inventory.Weight() }

// FindInInventory looks an item up by name
func (p *Player) FindInInventory(name string) (*item.Item, bool) {
	return p.inventory.FindByName(name)
}

// FindEquipped looks an equipped item up by name
func (p *Player) FindEquipped(name string) (*item.Item, bool) {
	return p.equipped.FindByName(name)
}

// IsEquipped reports whether the exact item is equipped
func (p *Player) IsEquipped(it *item.Item) bool {
	return p.equipped.Contains(it)
}

// Stats returns a snapshot of the current character sheet
func (p *Player) Stats() Stats {
	return Stats{
		Name:         p.name,
		Level:        p.level,
		Experience:   p.experience,
		XPToNext:     XPToNextLevel(p.experience),
		HP:           p.hp,
		MaxHP:        p.MaxHP(),
		Attack:       p.TotalAttack(),
		Defense:      p.TotalDefense(),
		WeaponAttack: p.weaponAttack,
		ArmorDefense: p.armorDefense,
		CharmAttack:  p.charmAttack,
		CharmDefense: p.charmDefense,
		CharmHP:      p.charmHP,
		Money:        p.money,
		Weight:       p.inventory.Weight(),
		WeightLimit:  p.weightLimit,
	}
}

// Equip puts an inventory item into its slot.
// Returns false if the item is not equippable, not carried, or its slot is taken.
func (p *Player) Equip(it *item.Item) bool {
	if it == nil {
		return false
	}
	slot, ok := it.Slot()
	if !ok {
		return false
	}
	if !p.inventory.Contains(it) || p.equipped.Contains(it) {
		return false
	}
	if _, taken := p.equipped.FindBySlot(slot); taken {
		return false
	}

	p.equipped.Add(it)
	p.recompute()
	return true
}

// Unequip takes an item out of its slot and describes what happened
func (p *Player) Unequip(it *item.Item) (string, bool) {
	if it == nil {
		return fmt.Sprintf(MsgNotEquipped, "item"), false
	}
	if !p.equipped.Remove(it) {
		return fmt.Sprintf(MsgNotEquipped, it.Name), false
	}

	p.recompute()
	return fmt.Sprintf(MsgUnequipped, it.Name), true
}

// AddToInventory picks an item up unless it would exceed the weight limit
func (p *Player) AddToInventory(it *item.Item) bool {
	if it == nil || p.inventory.Contains(it) {
		return false
	}
	if p.inventory.Weight().Add(it.Weight).GreaterThan(p.weightLimit) {
		return false
	}

	p.inventory.Add(it)
	return true
}

// CanCarry reports whether the item fits under the weight limit
func (p *Player) CanCarry(it *item.Item) bool {
	return it != nil && !p.inventory.Weight().Add(it.Weight).GreaterThan(p.weightLimit)
}

// RemoveFromInventory drops an item, unequipping it first if needed
func (p *Player) RemoveFromInventory(it *item.Item) bool {
	if it == nil || !p.inventory.Contains(it) {
		return false
	}
	if p.equipped.Contains(it) {
		p.Unequip(it)
	}

	p.inventory.Remove(it)
	return true
}

// TakeAttack applies max(0, amount - defense) damage and returns the damage dealt
func (p *Player) TakeAttack(amount int) int {
	damage := amount - p.TotalDefense()
	if damage <= 0 {
		return 0
	}
	if damage > p.hp {
		damage = p.hp
	}
	p.hp -= damage
	return damage
}

// Heal restores hp up to MaxHP and returns the amount restored
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.hp
	p.hp += amount
	p.clampHP()
	return p.hp - before
}

// IsDead reports whether hp has reached zero
func (p *Player) IsDead() bool {
	return p.hp <= 0
}

// Attack hits the target with TotalAttack and returns the damage it took
func (p *Player) Attack(target Target) int {
	return target.TakeAttack(p.TotalAttack())
}

// IncreaseExperience adds experience and returns the number of levels gained
func (p *Player) IncreaseExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.level
	p.experience += amount
	p.updateLevel()
	return p.level - before
}

// UsePotion drinks the named potion from the inventory.
// Returns the hp restored and whether a potion was consumed.
func (p *Player) UsePotion(name string) (int, bool) {
	for _, it := range p.inventory.Items() {
		if it.IsPotion() && strings.EqualFold(it.Name, name) {
			p.inventory.Remove(it)
			return p.Heal(it.Healing), true
		}
	}
	return 0, false
}

// IncreaseMoney adds money; negative amounts are ignored
func (p *Player) IncreaseMoney(amount decimal.Decimal) {
	if amount.IsPositive() {
		p.money = p.money.Add(amount)
	}
}

// DecreaseMoney spends money and reports false if there is not enough
func (p *Player) DecreaseMoney(amount decimal.Decimal) bool {
	if amount.IsNegative() || amount.GreaterThan(p.money) {
		return false
	}
	p.money = p.money.Sub(amount)
	return true
}

// MoveTo changes the player's location
func (p *Player) MoveTo(location domain.Location) {
	p.location = location
}

// updateLevel derives level and base stats from total experience.
// It is absolute, so repeated calls at the same experience change nothing.
func (p *Player) updateLevel() {
	level := LevelForExperience(p.experience)
	newBaseMaxHP := BaseMaxHPForLevel(level)

	if gain := newBaseMaxHP - p.baseMaxHP; level > p.level && gain > 0 {
		p.hp += gain
	}

	p.level = level
	p.baseMaxHP = newBaseMaxHP
	p.baseAttack = BaseAttackForLevel(level)
	p.clampHP()
}

// recompute refreshes equipment bonuses from the equipped set
func (p *Player) recompute() {
	p.weaponAttack, p.armorDefense = 0, 0
	p.charmAttack, p.charmDefense, p.charmHP = 0, 0, 0

	for _, it := range p.equipped.Items() {
		switch it.Kind {
		case item.KindWeapon:
			p.weaponAttack += it.Attack
		case item.KindArmor:
			p.armorDefense += it.Defense
		case item.KindCharm:
			p.charmAttack += it.Attack
			p.charmDefense += it.Defense
			p.charmHP += it.HP
		}
	}
	p.clampHP()
}

func (p *Player) clampHP() {
	if p.hp < 0 {
		p.hp = 0
	}
	if maxHP := p.MaxHP(); p.hp > maxHP {
		p.hp = maxHP
	}
}
