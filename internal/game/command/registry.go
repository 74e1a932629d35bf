package command

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cory-johannsen/adventure/internal/game/lexical"
)

// DefaultCodeCacheSize bounds the number of memoised phonetic codes.
const DefaultCodeCacheSize = 256

// Option configures a Registry.
type Option func(*registryOptions)

type registryOptions struct {
	phonetic  bool
	cacheSize int
}

// WithPhonetic enables or disables Soundex matching for verbs that have no
// exact name or alias match. It is enabled by default.
func WithPhonetic(enabled bool) Option {
	return func(o *registryOptions) {
		o.phonetic = enabled
	}
}

// WithCodeCacheSize sets how many typed verbs keep their Soundex code cached.
//
// Precondition: size > 0.
func WithCodeCacheSize(size int) Option {
	return func(o *registryOptions) {
		o.cacheSize = size
	}
}

// Registry maps command names and aliases to Command definitions.
type Registry struct {
	order    []*Command
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
	phonetic map[string]string   // soundex code → canonical name
	codes    *lru.Cache[string, string]
	fuzzy    bool
}

// NewRegistry creates a Registry populated with the given commands.
//
// Soundex codes shared by two different commands are left out of the
// phonetic index, so fuzzy matching never picks between commands.
//
// Precondition: No two commands may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(cmds []Command, opts ...Option) (*Registry, error) {
	o := registryOptions{phonetic: true, cacheSize: DefaultCodeCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	codes, err := lru.New[string, string](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating soundex cache: %w", err)
	}

	r := &Registry{
		order:    make([]*Command, 0, len(cmds)),
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
		phonetic: make(map[string]string),
		codes:    codes,
		fuzzy:    o.phonetic,
	}

	for i := range cmds {
		cmd := &cmds[i]
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if _, exists := r.aliases[cmd.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", cmd.Name)
		}
		r.commands[cmd.Name] = cmd
		r.order = append(r.order, cmd)

		for _, alias := range cmd.Aliases {
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with command name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}
	}

	r.indexPhonetic()
	return r, nil
}

func (r *Registry) indexPhonetic() {
	ambiguous := make(map[string]bool)
	for _, cmd := range r.order {
		words := append([]string{cmd.Name}, cmd.Aliases...)
		for _, w := range words {
			code := lexical.Soundex(w)
			if code == "" || ambiguous[code] {
				continue
			}
			if owner, exists := r.phonetic[code]; exists && owner != cmd.Name {
				delete(r.phonetic, code)
				ambiguous[code] = true
				continue
			}
			r.phonetic[code] = cmd.Name
		}
	}
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry(opts ...Option) *Registry {
	r, err := NewRegistry(BuiltinCommands(), opts...)
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name or alias, falling back to Soundex
// matching when enabled.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	input = lexical.Lower(input)
	if cmd, ok := r.commands[input]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[input]; ok {
		return r.commands[canonical], true
	}
	if !r.fuzzy {
		return nil, false
	}
	if canonical, ok := r.phonetic[r.soundex(input)]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

func (r *Registry) soundex(word string) string {
	if code, ok := r.codes.Get(word); ok {
		return code
	}
	code := lexical.Soundex(word)
	r.codes.Add(word, code)
	return code
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []*Command {
	result := make([]*Command, len(r.order))
	copy(result, r.order)
	return result
}

// CommandsByCategory returns commands grouped by category.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	categories := make(map[string][]*Command)
	for _, cmd := range r.order {
		categories[cmd.Category] = append(categories[cmd.Category], cmd)
	}
	return categories
}
