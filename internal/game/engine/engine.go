// Package engine runs the turn-based game loop: it renders the player's
// location, reads one command per turn, and applies it to the world.
package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/inventory"
	"github.com/cory-johannsen/adventure/internal/game/lexical"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Prompt is written before every read.
const Prompt = "> "

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for diagnostics. Nothing is logged to the player.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the default command registry.
func WithRegistry(r *command.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithRecorder installs an observer for dispatched commands.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithSuggestions toggles the "Did you mean" hint for misspelled item names.
func WithSuggestions(enabled bool) Option {
	return func(e *Engine) {
		e.suggestions = enabled
	}
}

// Engine owns one player's game: the map, the position, and the backpack.
// It is driven by a single goroutine and is not safe for concurrent use.
type Engine struct {
	io          InputOutput
	world       *world.Map
	position    world.Coords
	inventory   *inventory.Backpack
	registry    *command.Registry
	logger      *zap.Logger
	recorder    Recorder
	suggestions bool

	// writeErr holds the first output failure; later writes are skipped.
	writeErr error
}

// New creates an Engine with the player at the map's start location.
//
// Precondition: io and m must not be nil.
// Postcondition: Returns an Engine with an empty backpack and the default
// registry unless overridden by opts.
func New(io InputOutput, m *world.Map, opts ...Option) *Engine {
	e := &Engine{
		io:        io,
		world:     m,
		position:  m.Start(),
		inventory: inventory.NewBackpack(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = command.DefaultRegistry()
	}
	return e
}

// Position returns the player's current coordinates.
func (e *Engine) Position() world.Coords {
	return e.position
}

// Inventory returns the player's backpack.
func (e *Engine) Inventory() *inventory.Backpack {
	return e.inventory
}

// Map returns the world the engine mutates.
func (e *Engine) Map() *world.Map {
	return e.world
}

// Run plays turns until the player quits.
//
// Postcondition: Returns nil after a quit command, ctx.Err() when ctx is
// cancelled between turns, or a wrapped error from the InputOutput. Callers
// should treat a wrapped io.EOF as the player going away.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("game started",
		zap.String("map", e.world.Name),
		zap.Int("x", e.position.X),
		zap.Int("y", e.position.Y),
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Render(); err != nil {
			return err
		}
		line, err := e.readCommand(ctx)
		if err != nil {
			return err
		}
		quit := e.Do(line)
		if e.writeErr != nil {
			return fmt.Errorf("writing output: %w", e.writeErr)
		}
		if quit {
			e.logger.Info("game ended by player")
			return nil
		}
	}
}

// readCommand prompts until the player enters a non-blank line.
func (e *Engine) readCommand(ctx context.Context) (string, error) {
	for {
		e.write(StylePrompt, Prompt, false)
		if e.writeErr != nil {
			return "", fmt.Errorf("writing output: %w", e.writeErr)
		}
		line, err := e.io.Input()
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
}

// Render shows the current location: its description, the text of its
// event if one fires, the items lying here, and the carried items.
//
// Postcondition: One-shot events are cleared after firing.
func (e *Engine) Render() error {
	loc, ok := e.world.At(e.position)
	if !ok {
		return fmt.Errorf("rendering %s: %w", e.position, world.ErrLocationNotFound)
	}

	e.write(StyleDescription, loc.Description, true)

	if text, fired := loc.Fire(e.inventory, e.world); fired {
		e.logger.Debug("event fired", zap.Stringer("at", loc.Coords), zap.Bool("once", loc.EventOnce))
		if text != "" {
			e.write(StyleEvent, text, true)
		}
	}

	if len(loc.Items) > 0 {
		e.write(StyleItems, "You can see: "+listWithArticles(loc.ItemNames()), true)
	}
	if e.inventory.Len() > 0 {
		e.write(StyleInventory, "You are carrying: "+listWithArticles(e.inventory.Names()), true)
	}

	if e.writeErr != nil {
		return fmt.Errorf("writing output: %w", e.writeErr)
	}
	return nil
}

// Do interprets one line of player input and applies it.
//
// Postcondition: Returns true only for a recognized quit command. Blank
// lines are ignored.
func (e *Engine) Do(line string) bool {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false
	}

	cmd, ok := e.registry.Resolve(parsed.Command)
	if !ok {
		e.logger.Debug("unknown command", zap.String("line", parsed.Raw))
		e.record(HandlerUnknown)
		e.respond(StyleError, fmt.Sprintf("I don't know how to %s.", parsed.Raw))
		return false
	}

	e.logger.Debug("dispatching command",
		zap.String("handler", cmd.Handler),
		zap.String("verb", parsed.Command),
		zap.Int("x", e.position.X),
		zap.Int("y", e.position.Y),
	)
	e.record(cmd.Handler)

	verb := spokenVerb(cmd, parsed.Command)
	object := parsed.Object()
	if cmd.NeedsArgument() && object == "" {
		e.respond(StyleError, missingArgument(cmd, verb))
		return false
	}

	switch cmd.Handler {
	case command.HandlerMove:
		e.move(parsed.Args[0])
	case command.HandlerTake:
		e.take(object)
	case command.HandlerUse:
		e.use(object)
	case command.HandlerDrop:
		e.drop(object)
	case command.HandlerDescribe:
		// The next turn renders the location again.
	case command.HandlerHelp:
		e.help()
	case command.HandlerClear:
		if err := e.io.Clear(); err != nil && e.writeErr == nil {
			e.writeErr = err
		}
	case command.HandlerQuit:
		e.write(StyleResponse, "Bye!", true)
		return true
	default:
		e.logger.Warn("command has no handler", zap.String("name", cmd.Name), zap.String("handler", cmd.Handler))
		e.respond(StyleError, fmt.Sprintf("I don't know how to %s.", parsed.Raw))
	}
	return false
}

func (e *Engine) record(handler string) {
	if e.recorder != nil {
		e.recorder.CommandHandled(handler)
	}
}

// write forwards to the InputOutput unless an earlier write failed.
func (e *Engine) write(style Style, text string, newLine bool) {
	if e.writeErr != nil {
		return
	}
	if err := e.io.Write(style, text, newLine); err != nil {
		e.writeErr = err
	}
}

// respond writes a reply to a command, followed by a blank line.
func (e *Engine) respond(style Style, msg string) {
	e.write(style, msg+"\n", true)
}

// spokenVerb returns the word the player typed when it is a real name or
// alias of cmd, and the canonical name when it was matched phonetically.
func spokenVerb(cmd *command.Command, typed string) string {
	if typed == cmd.Name {
		return typed
	}
	for _, alias := range cmd.Aliases {
		if typed == alias {
			return typed
		}
	}
	return cmd.Name
}

func missingArgument(cmd *command.Command, verb string) string {
	if cmd.Handler == command.HandlerMove {
		return capitalize(verb) + " where exactly?"
	}
	return fmt.Sprintf("What do you want to %s?", verb)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}

func listWithArticles(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = lexical.WithArticle(n)
	}
	return strings.Join(parts, ", ")
}
