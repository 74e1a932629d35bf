package world

// Inventory is the view of the player's carried items that events may use.
type Inventory interface {
	Add(it *Item)
	Has(name string) bool
}

// Event is a narrative side effect triggered by rendering a location.
// Trigger may mutate the map and returns the text to show the player.
type Event interface {
	Trigger(inv Inventory, m *Map) string
}

// EventFunc adapts a plain function to Event.
type EventFunc func(inv Inventory, m *Map) string

// Trigger calls f(inv, m).
func (f EventFunc) Trigger(inv Inventory, m *Map) string {
	return f(inv, m)
}

// EventKind selects the side effect of a ScriptedEvent.
type EventKind string

// Supported event kinds.
const (
	// EventMessage only shows text.
	EventMessage EventKind = "message"
	// EventSeal makes Target inaccessible with BlockedMessage.
	EventSeal EventKind = "seal"
	// EventReveal makes Target accessible.
	EventReveal EventKind = "reveal"
	// EventRedescribe replaces the description of Target.
	EventRedescribe EventKind = "redescribe"
	// EventGrant gives the player a copy of Grant unless one is already carried.
	EventGrant EventKind = "grant"
)

// ScriptedEvent is the data-driven Event loaded from map files.
type ScriptedEvent struct {
	Kind           EventKind
	Text           string
	Target         Coords
	BlockedMessage string
	Description    string
	Grant          *Item
}

// Trigger applies the event's side effect and returns its text. Effects
// aimed at missing locations are skipped.
func (e ScriptedEvent) Trigger(inv Inventory, m *Map) string {
	switch e.Kind {
	case EventSeal:
		if loc, ok := m.At(e.Target); ok {
			loc.Seal(e.BlockedMessage)
		}
	case EventReveal:
		if loc, ok := m.At(e.Target); ok {
			loc.Open()
		}
	case EventRedescribe:
		if loc, ok := m.At(e.Target); ok {
			loc.Description = e.Description
		}
	case EventGrant:
		if e.Grant != nil && !inv.Has(e.Grant.Description) {
			inv.Add(e.Grant.Clone())
		}
	}
	return e.Text
}
