package console

import (
	"context"
	"sort"
	"strings"
)

// Command is one verb the player can type
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	// NeedsArg commands print their usage when typed alone
	NeedsArg bool
	Run      func(ctx context.Context, g *Game, arg string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]*Command
	lookup   map[string]*Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		lookup:   make(map[string]*Command),
	}
}

// Register adds a command under its name and aliases
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	r.lookup[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.lookup[alias] = cmd
	}
}

// Get retrieves a command by name or alias
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.lookup[strings.ToLower(name)]
	return cmd, ok
}

// List returns the commands sorted by name
func (r *Registry) List() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

// Help renders the command list with aligned descriptions
func (r *Registry) Help() []string {
	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Usage) > maxLen {
			maxLen = len(cmd.Usage)
		}
	}

	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Usage) + 2
		lines = append(lines, "  "+cmd.Usage+strings.Repeat(" ", padding)+cmd.Description)
	}
	return lines
}

func defaultCommands() *Registry {
	r := NewRegistry()
	r.Register(&Command{Name: "go", Usage: "go <direction>", Description: "Travel north, south, east or west (or just n/s/e/w)", NeedsArg: true, Run: cmdGo})
	r.Register(&Command{Name: "look", Aliases: []string{"l"}, Usage: "look", Description: "Describe where you are", Run: cmdLook})
	r.Register(&Command{Name: "stats", Usage: "stats", Description: "Show your character sheet", Run: cmdStats})
	r.Register(&Command{Name: "inventory", Aliases: []string{"i", "inv"}, Usage: "inventory", Description: "List what you carry", Run: cmdInventory})
	r.Register(&Command{Name: "equip", Usage: "equip <item>", Description: "Wield a weapon, wear armor or a charm", NeedsArg: true, Run: cmdEquip})
	r.Register(&Command{Name: "unequip", Usage: "unequip <item>", Description: "Take off an equipped item", NeedsArg: true, Run: cmdUnequip})
	r.Register(&Command{Name: "use", Aliases: []string{"drink"}, Usage: "use <potion>", Description: "Drink a potion", NeedsArg: true, Run: cmdUse})
	r.Register(&Command{Name: "take", Aliases: []string{"get"}, Usage: "take <item>", Description: "Pick up an item here", NeedsArg: true, Run: cmdTake})
	r.Register(&Command{Name: "drop", Usage: "drop <item>", Description: "Leave an item here", NeedsArg: true, Run: cmdDrop})
	r.Register(&Command{Name: "rest", Usage: "rest", Description: "Stay at the inn to recover hp", Run: cmdRest})
	r.Register(&Command{Name: "shop", Aliases: []string{"list"}, Usage: "shop", Description: "See what the shop sells", Run: cmdShop})
	r.Register(&Command{Name: "buy", Usage: "buy <item>", Description: "Buy an item from the shop", NeedsArg: true, Run: cmdBuy})
	r.Register(&Command{Name: "sell", Usage: "sell <item>", Description: "Sell an item for half its cost", NeedsArg: true, Run: cmdSell})
	r.Register(&Command{Name: "help", Aliases: []string{"?"}, Usage: "help", Description: "Show this list", Run: cmdHelp})
	r.Register(&Command{Name: "quit", Aliases: []string{"q", "exit"}, Usage: "quit", Description: "Leave the game", Run: cmdQuit})
	return r
}
