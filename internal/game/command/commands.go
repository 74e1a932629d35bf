// Package command provides the command vocabulary, parser, and registry.
package command

// Categories for organizing commands in help output.
const (
	CategoryMovement = "movement"
	CategoryItems    = "items"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to game loop handlers.
const (
	HandlerMove     = "move"
	HandlerTake     = "take"
	HandlerUse      = "use"
	HandlerDrop     = "drop"
	HandlerDescribe = "describe"
	HandlerHelp     = "help"
	HandlerClear    = "clear"
	HandlerQuit     = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument the command expects, if any.
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, items, system).
	Category string
	// Handler selects the game loop handler that runs the command.
	Handler string
}

// NeedsArgument reports whether the command requires a direction or object.
func (c *Command) NeedsArgument() bool {
	switch c.Handler {
	case HandlerMove, HandlerTake, HandlerUse, HandlerDrop:
		return true
	default:
		return false
	}
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "go", Aliases: []string{"move", "head"}, Usage: "go <north|south|east|west>", Help: "Walk to a neighbouring location", Category: CategoryMovement, Handler: HandlerMove},

		{Name: "take", Aliases: []string{"pickup"}, Usage: "take <item>", Help: "Pick up an item lying here", Category: CategoryItems, Handler: HandlerTake},
		{Name: "use", Usage: "use <item>", Help: "Use a carried item here", Category: CategoryItems, Handler: HandlerUse},
		{Name: "drop", Usage: "drop <item>", Help: "Put down a carried item", Category: CategoryItems, Handler: HandlerDrop},

		{Name: "describe", Aliases: []string{"desc", "where"}, Usage: "describe", Help: "Describe your surroundings again", Category: CategorySystem, Handler: HandlerDescribe},
		{Name: "help", Usage: "help", Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "clear", Aliases: []string{"cls"}, Usage: "clear", Help: "Clear the screen", Category: CategorySystem, Handler: HandlerClear},
		{Name: "quit", Aliases: []string{"exit", "end", "bye"}, Usage: "quit", Help: "Leave the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// Categories returns the command categories in help order.
func Categories() []string {
	return []string{CategoryMovement, CategoryItems, CategorySystem}
}
