package console

import (
	"context"
	"errors"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/player"
	"github.com/osse101/middleearth/internal/town"
	"github.com/osse101/middleearth/internal/world"
)

func cmdGo(ctx context.Context, g *Game, arg string) error {
	dir, ok := world.ParseDirection(arg)
	if !ok {
		g.console.Printf(MsgNoExit, arg)
		return nil
	}
	return g.move(ctx, dir)
}

func cmdLook(_ context.Context, g *Game, _ string) error {
	g.describe()
	return nil
}

func cmdStats(_ context.Context, g *Game, _ string) error {
	s := g.player.Stats()
	c := g.console
	c.Printf("%s, level %d", s.Name, s.Level)
	c.Printf("Experience: %d (%d to next level)", s.Experience, s.XPToNext)
	c.Printf("HP:      %d/%d", s.HP, s.MaxHP)
	c.Printf("Attack:  %d (weapon +%d, charm +%d)", s.Attack, s.WeaponAttack, s.CharmAttack)
	c.Printf("Defense: %d (armor +%d, charm +%d)", s.Defense, s.ArmorDefense, s.CharmDefense)
	if s.CharmHP > 0 {
		c.Printf("Charm HP bonus: +%d", s.CharmHP)
	}
	c.Printf("Money:   %s", s.Money)
	c.Printf("Weight:  %s/%s", s.Weight, s.WeightLimit)
	return nil
}

func cmdInventory(_ context.Context, g *Game, _ string) error {
	items := g.player.Inventory()
	if len(items) == 0 {
		g.console.Println(MsgInventoryEmpty)
		return nil
	}
	for _, it := range items {
		marker := ""
		if g.player.IsEquipped(it) {
			marker = " (equipped)"
		}
		g.console.Printf("  %s%s - weight %s, worth %s", it.Name, marker, it.Weight, it.Cost)
	}
	return nil
}

func cmdEquip(_ context.Context, g *Game, arg string) error {
	it, ok := g.player.FindInInventory(arg)
	if !ok {
		g.console.Printf(MsgNotCarrying, arg)
		return nil
	}
	if !g.player.Equip(it) {
		g.console.Printf(MsgCannotEquip, it.Name)
		return nil
	}
	g.console.Printf(MsgEquipped, it.Name)
	return nil
}

func cmdUnequip(_ context.Context, g *Game, arg string) error {
	it, ok := g.player.FindEquipped(arg)
	if !ok {
		g.console.Printf(player.MsgNotEquipped, arg)
		return nil
	}
	msg, _ := g.player.Unequip(it)
	g.console.Println(msg)
	return nil
}

func cmdUse(_ context.Context, g *Game, arg string) error {
	healed, ok := g.player.UsePotion(arg)
	if !ok {
		g.console.Printf(MsgNotPotion, arg)
		return nil
	}
	g.console.Printf(MsgHealed, healed)
	return nil
}

func cmdTake(_ context.Context, g *Game, arg string) error {
	ground := g.here.Items()
	it, ok := ground.FindByName(arg)
	if !ok {
		g.console.Printf(MsgNotHere, arg)
		return nil
	}
	if !g.player.AddToInventory(it) {
		g.console.Printf(MsgTooHeavy, it.Name)
		return nil
	}
	ground.Remove(it)
	g.console.Printf(MsgTaken, it.Name)
	return nil
}

func cmdDrop(_ context.Context, g *Game, arg string) error {
	it, ok := g.player.FindInInventory(arg)
	if !ok {
		g.console.Printf(MsgNotCarrying, arg)
		return nil
	}
	g.player.RemoveFromInventory(it)
	g.here.Items().Add(it)
	g.console.Printf(MsgDropped, it.Name)
	return nil
}

func cmdRest(_ context.Context, g *Game, _ string) error {
	t, ok := g.here.Town()
	if !ok || t.Inn == nil {
		g.console.Println(MsgNoInn)
		return nil
	}
	healed, err := t.Inn.Rest(g.player)
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		g.console.Println(err.Error())
	case err != nil:
		return err
	case healed == 0:
		g.console.Println(MsgAlreadyRested)
	default:
		g.console.Printf(MsgRested, t.Inn.Name, healed)
	}
	return nil
}

func shopHere(g *Game) (*town.Shop, bool) {
	t, ok := g.here.Town()
	if !ok || t.Shop == nil {
		g.console.Println(MsgNoShop)
		return nil, false
	}
	return t.Shop, true
}

func cmdShop(_ context.Context, g *Game, _ string) error {
	shop, ok := shopHere(g)
	if !ok {
		return nil
	}
	stock := shop.Stock()
	if len(stock) == 0 {
		g.console.Printf(MsgStockEmpty, shop.Name)
		return nil
	}
	g.console.Println(shop.Name + ":")
	for _, it := range stock {
		g.console.Printf("  %s - %s (weight %s)", it.Name, it.Cost, it.Weight)
	}
	return nil
}

func cmdBuy(_ context.Context, g *Game, arg string) error {
	shop, ok := shopHere(g)
	if !ok {
		return nil
	}
	it, err := shop.Buy(g.player, arg)
	if err != nil {
		g.console.Println(err.Error())
		return nil
	}
	g.console.Printf(MsgBought, it.Name, it.Cost)
	return nil
}

func cmdSell(_ context.Context, g *Game, arg string) error {
	shop, ok := shopHere(g)
	if !ok {
		return nil
	}
	price, err := shop.Sell(g.player, arg)
	if err != nil {
		g.console.Printf(MsgNotCarrying, arg)
		return nil
	}
	g.console.Printf(MsgSold, arg, price)
	return nil
}

func cmdHelp(_ context.Context, g *Game, _ string) error {
	for _, line := range g.commands.Help() {
		g.console.Println(line)
	}
	return nil
}

func cmdQuit(_ context.Context, g *Game, _ string) error {
	g.console.Println(MsgFarewell)
	g.over = true
	return nil
}
