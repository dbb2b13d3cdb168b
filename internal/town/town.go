package town

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/item"
)

// SellRatio is the fraction of an item's cost a shop pays for it
var SellRatio = decimal.NewFromFloat(0.5)

// Guest is the player surface an inn needs
type Guest interface {
	HP() int
	MaxHP() int
	Heal(amount int) int
	Money() decimal.Decimal
	DecreaseMoney(amount decimal.Decimal) bool
}

// Customer is the player surface a shop needs
type Customer interface {
	Money() decimal.Decimal
	DecreaseMoney(amount decimal.Decimal) bool
	IncreaseMoney(amount decimal.Decimal)
	CanCarry(it *item.Item) bool
	AddToInventory(it *item.Item) bool
	RemoveFromInventory(it *item.Item) bool
	FindInInventory(name string) (*item.Item, bool)
}

// Town groups the buildings at a location
type Town struct {
	Name        string
	Description string
	Inn         *Inn
	Shop        *Shop
}

// Inn restores hp for a price
type Inn struct {
	Name string
	Cost decimal.Decimal
}

// Rest heals the guest to full and charges the room price.
// A guest already at full hp is not charged.
func (i *Inn) Rest(g Guest) (int, error) {
	missing := g.MaxHP() - g.HP()
	if missing <= 0 {
		return 0, nil
	}
	if !g.DecreaseMoney(i.Cost) {
		return 0, fmt.Errorf("%w: a room costs %s, you have %s", domain.ErrInsufficientFunds, i.Cost, g.Money())
	}
	return g.Heal(missing), nil
}

// Shop buys and sells items
type Shop struct {
	Name  string
	stock *item.Set
}

// NewShop creates a shop stocked with the given items
func NewShop(name string, stock ...*item.Item) *Shop {
	return &Shop{Name: name, stock: item.NewSet(stock...)}
}

// Stock lists the items for sale
func (s *Shop) Stock() []*item.Item {
	return s.stock.Items()
}

// Buy sells the named item to the customer at full cost
func (s *Shop) Buy(c Customer, name string) (*item.Item, error) {
	it, ok := s.stock.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not sell %q", domain.ErrItemNotFound, s.Name, name)
	}
	if it.Cost.GreaterThan(c.Money()) {
		return nil, fmt.Errorf("%w: %s costs %s", domain.ErrInsufficientFunds, it.Name, it.Cost)
	}
	if !c.CanCarry(it) {
		return nil, fmt.Errorf("%w: %s weighs %s", domain.ErrInventoryFull, it.Name, it.Weight)
	}

	c.DecreaseMoney(it.Cost)
	c.AddToInventory(it)
	s.stock.Remove(it)
	return it, nil
}

// Sell buys the named item from the customer at SellRatio of its cost.
// Equipped items are unequipped first; the item is relisted at its full cost.
func (s *Shop) Sell(c Customer, name string) (decimal.Decimal, error) {
	it, ok := c.FindInInventory(strings.TrimSpace(name))
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrNotInInventory, name)
	}

	price := SalePrice(it)
	c.RemoveFromInventory(it)
	c.IncreaseMoney(price)
	s.stock.Add(it)
	return price, nil
}

// SalePrice is what a shop pays for the item
func SalePrice(it *item.Item) decimal.Decimal {
	return it.Cost.Mul(SellRatio)
}
