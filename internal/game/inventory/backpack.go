// Package inventory holds the items a player carries.
package inventory

import "github.com/cory-johannsen/adventure/internal/game/world"

// Backpack is the player's ordered collection of carried items. Items are
// moved in and out by pointer, never copied.
type Backpack struct {
	items world.ItemList
}

// NewBackpack creates a Backpack holding items in order.
//
// Postcondition: returned Backpack holds exactly the given items.
func NewBackpack(items ...*world.Item) *Backpack {
	return &Backpack{items: append(world.ItemList(nil), items...)}
}

// Add places it at the end of the backpack.
//
// Precondition: it must not be nil.
func (b *Backpack) Add(it *world.Item) {
	b.items = append(b.items, it)
}

// Remove takes the first item matching name out of the backpack.
//
// Postcondition: Returns (item, true) and removes it when found; returns
// (nil, false) and leaves the backpack unchanged otherwise.
func (b *Backpack) Remove(name string) (*world.Item, bool) {
	idx := b.items.Index(name)
	if idx < 0 {
		return nil, false
	}
	it := b.items[idx]
	b.items = append(b.items[:idx:idx], b.items[idx+1:]...)
	return it, true
}

// RemoveItem takes it out of the backpack by identity.
//
// Postcondition: Returns false and leaves the backpack unchanged when it is not carried.
func (b *Backpack) RemoveItem(it *world.Item) bool {
	for idx, carried := range b.items {
		if carried == it {
			b.items = append(b.items[:idx:idx], b.items[idx+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first item matching name, or nil.
func (b *Backpack) Find(name string) *world.Item {
	return b.items.Find(name)
}

// Has reports whether an item matching name is carried.
func (b *Backpack) Has(name string) bool {
	return b.items.Index(name) >= 0
}

// Items returns a snapshot of the carried items.
//
// Postcondition: returned slice is a copy; reordering it does not affect the backpack.
func (b *Backpack) Items() world.ItemList {
	out := make(world.ItemList, len(b.items))
	copy(out, b.items)
	return out
}

// Names returns the descriptions of the carried items in order.
func (b *Backpack) Names() []string {
	return b.items.Names()
}

// Len returns the number of carried items.
func (b *Backpack) Len() int {
	return len(b.items)
}
