package world

// Location is a single cell of the map grid.
type Location struct {
	// Coords is the unique key of the location within its map.
	Coords Coords
	// Description is shown on arrival and may be rewritten by item effects.
	Description string
	// Accessible reports whether players may enter the location.
	Accessible bool
	// BlockedMessage is shown when entry is refused. Empty selects the generic message.
	BlockedMessage string
	// Items lists the items lying here, in the order they were put down.
	Items ItemList
	// Event fires every time the location is rendered. Nil means no event.
	Event Event
	// EventOnce clears Event after it has fired.
	EventOnce bool
}

// NewLocation creates an accessible location holding items.
func NewLocation(at Coords, description string, items ...*Item) *Location {
	return &Location{
		Coords:      at,
		Description: description,
		Accessible:  true,
		Items:       append(ItemList(nil), items...),
	}
}

// FindItem returns the item matching name, or nil.
func (l *Location) FindItem(name string) *Item {
	return l.Items.Find(name)
}

// TakeItem removes the item matching name and returns it.
//
// Postcondition: Returns nil and leaves Items unchanged when no item matches.
func (l *Location) TakeItem(name string) *Item {
	idx := l.Items.Index(name)
	if idx < 0 {
		return nil
	}
	it := l.Items[idx]
	l.Items = append(l.Items[:idx:idx], l.Items[idx+1:]...)
	return it
}

// PutItem places it at the end of the location's item list.
func (l *Location) PutItem(it *Item) {
	l.Items = append(l.Items, it)
}

// ItemNames returns the descriptions of the items lying here.
func (l *Location) ItemNames() []string {
	return l.Items.Names()
}

// Seal makes the location inaccessible, refusing entry with message.
func (l *Location) Seal(message string) {
	l.Accessible = false
	l.BlockedMessage = message
}

// Open makes the location accessible again.
func (l *Location) Open() {
	l.Accessible = true
}

// Fire triggers the location's event, if any, and clears one-shot events.
//
// Postcondition: Returns ("", false) when there is no event.
func (l *Location) Fire(inv Inventory, m *Map) (string, bool) {
	if l.Event == nil {
		return "", false
	}
	ev := l.Event
	if l.EventOnce {
		l.Event = nil
	}
	return ev.Trigger(inv, m), true
}
