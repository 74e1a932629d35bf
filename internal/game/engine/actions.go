package engine

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/lexical"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// suggestionDistance is the largest edit distance offered as a "Did you mean".
const suggestionDistance = 2

func (e *Engine) move(token string) {
	cantMove := fmt.Sprintf("I can't move in the direction %s.", token)

	dir, ok := world.ParseDirection(token)
	if !ok {
		e.respond(StyleError, cantMove)
		return
	}
	target := e.position.Step(dir)
	loc, ok := e.world.At(target)
	if !ok {
		e.respond(StyleError, cantMove)
		return
	}
	if !loc.Accessible {
		if loc.BlockedMessage != "" {
			e.respond(StyleError, loc.BlockedMessage)
		} else {
			e.respond(StyleError, cantMove)
		}
		return
	}

	e.logger.Debug("player moved", zap.Stringer("from", e.position), zap.Stringer("to", target))
	e.position = target
}

func (e *Engine) take(name string) {
	loc := e.here()
	it := loc.TakeItem(name)
	if it == nil {
		e.respond(StyleError, fmt.Sprintf("There is no %s here.", name))
		e.suggest(name, loc.Items)
		return
	}
	e.inventory.Add(it)
	e.respond(StyleResponse, fmt.Sprintf("You take the %s.", it.Description))
}

func (e *Engine) drop(name string) {
	it, ok := e.inventory.Remove(name)
	if !ok {
		e.respond(StyleError, notCarrying(name))
		e.suggest(name, e.inventory.Items())
		return
	}
	e.here().PutItem(it)
	e.respond(StyleResponse, fmt.Sprintf("You drop the %s.", it.Description))
}

func (e *Engine) use(name string) {
	it := e.inventory.Find(name)
	if it == nil {
		e.respond(StyleError, notCarrying(name))
		e.suggest(name, e.inventory.Items())
		return
	}
	if it.Broken() {
		e.respond(StyleError, fmt.Sprintf("The %s is broken.", it.Description))
		return
	}
	if !it.CanUseAt(e.position) {
		e.respond(StyleError, fmt.Sprintf("The %s can't be used here.", it.Description))
		return
	}

	res := it.Action.Use(e.position)
	if res.Target != nil {
		if loc, ok := e.world.At(*res.Target); ok {
			loc.Description = res.NewDescription
		}
	}
	if res.MakeAccessible != nil {
		if loc, ok := e.world.At(*res.MakeAccessible); ok {
			loc.Open()
		}
	}
	if res.Description != "" {
		e.respond(StyleResponse, res.Description)
	}

	if it.UsesLeft != world.Unlimited {
		it.UsesLeft--
	}
	e.logger.Debug("item used", zap.String("item", it.Description), zap.Int("uses_left", it.UsesLeft))
	if it.Broken() {
		e.respond(StyleResponse, it.LastUseMessage())
		if e.inventory.RemoveItem(it) {
			e.here().PutItem(it)
			e.respond(StyleResponse, fmt.Sprintf("You drop the %s.", it.Description))
		}
	}
}

func (e *Engine) help() {
	title := cases.Title(language.English)
	byCategory := e.registry.CommandsByCategory()
	for _, cat := range command.Categories() {
		cmds := byCategory[cat]
		if len(cmds) == 0 {
			continue
		}
		e.write(StyleHelp, title.String(cat), true)
		for _, cmd := range cmds {
			line := fmt.Sprintf("  %-28s %s", cmd.Usage, cmd.Help)
			if len(cmd.Aliases) > 0 {
				line += fmt.Sprintf(" (also %s)", joinWords(cmd.Aliases))
			}
			e.write(StyleHelp, line, true)
		}
	}
	e.write(StyleHelp, "", true)
}

// suggest offers the closest candidate item name when the player mistyped one.
func (e *Engine) suggest(name string, candidates world.ItemList) {
	if !e.suggestions || len(candidates) == 0 {
		return
	}
	var best *world.Item
	bestDist := suggestionDistance + 1
	for _, it := range candidates {
		d, err := lexical.Levenshtein(name, lexical.Lower(it.Description))
		if err != nil {
			e.logger.Debug("skipping suggestion", zap.String("item", it.Description), zap.Error(err))
			continue
		}
		if d < bestDist {
			best, bestDist = it, d
		}
	}
	if best != nil {
		e.respond(StyleResponse, fmt.Sprintf("Did you mean the %s?", best.Description))
	}
}

// here returns the player's current location.
//
// Precondition: the position always names a location; moves are checked against the map.
func (e *Engine) here() *world.Location {
	loc, _ := e.world.At(e.position)
	return loc
}

func notCarrying(name string) string {
	return fmt.Sprintf("You aren't carrying %s.", lexical.WithArticle(name))
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		switch {
		case i == 0:
		case i == len(words)-1:
			out += " or "
		default:
			out += ", "
		}
		out += w
	}
	return out
}
