package world

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/cory-johannsen/adventure/internal/game/lexical"
)

// Unlimited is the use budget of an item that never breaks.
const Unlimited = math.MaxInt

// ItemUseResult describes what happened when an item was used.
type ItemUseResult struct {
	// Target is the location to redescribe. Nil leaves every description untouched.
	Target *Coords
	// NewDescription replaces the description of Target.
	NewDescription string
	// Description is shown to the player.
	Description string
	// MakeAccessible is the location to open up. Nil changes no accessibility.
	MakeAccessible *Coords
}

// Action is the behaviour an item performs when used.
type Action interface {
	Use(at Coords) ItemUseResult
}

// ActionFunc adapts a plain function to Action.
type ActionFunc func(at Coords) ItemUseResult

// Use calls f(at).
func (f ActionFunc) Use(at Coords) ItemUseResult {
	return f(at)
}

// UseEffect is the data-driven Action loaded from map files. It produces the
// same result wherever the item is used.
type UseEffect struct {
	Target         *Coords
	NewDescription string
	Text           string
	MakeAccessible *Coords
}

// Use returns the configured effect.
func (e UseEffect) Use(Coords) ItemUseResult {
	return ItemUseResult{
		Target:         e.Target,
		NewDescription: e.NewDescription,
		Description:    e.Text,
		MakeAccessible: e.MakeAccessible,
	}
}

// Item is a portable object. Its description doubles as the name players type.
type Item struct {
	// Description names the item and is matched case-insensitively.
	Description string
	// UseLocations holds the coordinates where Action may be invoked.
	UseLocations mapset.Set[Coords]
	// UsesLeft is decremented on every use; the item breaks at zero.
	UsesLeft int
	// LastUse is shown when the final use is spent. Empty selects a default.
	LastUse string
	// Action runs when the item is used. Nil items cannot be used anywhere.
	Action Action
}

// NewItem creates an item with an unlimited use budget and no use locations.
func NewItem(description string) *Item {
	return &Item{
		Description:  description,
		UseLocations: mapset.New[Coords](),
		UsesLeft:     Unlimited,
	}
}

// UsableAt adds coords to the item's use locations and returns the item.
func (i *Item) UsableAt(coords ...Coords) *Item {
	if i.UseLocations.Size() == 0 {
		i.UseLocations = mapset.New[Coords]()
	}
	for _, c := range coords {
		i.UseLocations.Put(c)
	}
	return i
}

// CanUseAt reports whether the item has an action that is valid at c.
func (i *Item) CanUseAt(c Coords) bool {
	return i.Action != nil && i.UseLocations.Has(c)
}

// Broken reports whether the use budget is spent.
func (i *Item) Broken() bool {
	return i.UsesLeft <= 0
}

// LastUseMessage returns the message shown when the final use is spent.
func (i *Item) LastUseMessage() string {
	if i.LastUse != "" {
		return i.LastUse
	}
	return "The " + i.Description + " broke."
}

// Matches reports whether name identifies the item, ignoring ASCII case.
func (i *Item) Matches(name string) bool {
	return lexical.EqualFold(i.Description, name)
}

// Clone returns an independent copy of the item with its own use-location set.
func (i *Item) Clone() *Item {
	c := *i
	c.UseLocations = mapset.New[Coords]()
	i.UseLocations.Each(func(at Coords) {
		c.UseLocations.Put(at)
	})
	return &c
}

// ItemList is an ordered collection of items.
type ItemList []*Item

// Index returns the position of the first item matching name, or -1.
func (l ItemList) Index(name string) int {
	for idx, it := range l {
		if it.Matches(name) {
			return idx
		}
	}
	return -1
}

// Find returns the first item matching name, or nil.
func (l ItemList) Find(name string) *Item {
	if idx := l.Index(name); idx >= 0 {
		return l[idx]
	}
	return nil
}

// Names returns the item descriptions in order.
func (l ItemList) Names() []string {
	names := make([]string, len(l))
	for idx, it := range l {
		names[idx] = it.Description
	}
	return names
}
