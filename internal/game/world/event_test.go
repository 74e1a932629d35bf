package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventTestMap(t *testing.T) *Map {
	t.Helper()
	m, err := NewMap(Coords{},
		NewLocation(Coords{X: 0, Y: 0}, "Here."),
		NewLocation(Coords{X: 1, Y: 0}, "There."),
	)
	require.NoError(t, err)
	return m
}

func TestScriptedEvent_Seal(t *testing.T) {
	m := eventTestMap(t)
	ev := ScriptedEvent{Kind: EventSeal, Target: Coords{X: 1, Y: 0}, BlockedMessage: "Closed.", Text: "Slam!"}

	assert.Equal(t, "Slam!", ev.Trigger(&fakeInventory{}, m))
	there, _ := m.At(Coords{X: 1, Y: 0})
	assert.False(t, there.Accessible)
	assert.Equal(t, "Closed.", there.BlockedMessage)
}

func TestScriptedEvent_RevealAndRedescribe(t *testing.T) {
	m := eventTestMap(t)
	there, _ := m.At(Coords{X: 1, Y: 0})
	there.Seal("Closed.")

	ScriptedEvent{Kind: EventReveal, Target: Coords{X: 1, Y: 0}}.Trigger(&fakeInventory{}, m)
	assert.True(t, there.Accessible)

	ScriptedEvent{Kind: EventRedescribe, Target: Coords{X: 1, Y: 0}, Description: "Changed."}.Trigger(&fakeInventory{}, m)
	assert.Equal(t, "Changed.", there.Description)
}

func TestScriptedEvent_MissingTargetIsSkipped(t *testing.T) {
	m := eventTestMap(t)
	text := ScriptedEvent{Kind: EventSeal, Target: Coords{X: 7, Y: 7}, Text: "Nothing."}.Trigger(&fakeInventory{}, m)
	assert.Equal(t, "Nothing.", text)
}

func TestScriptedEvent_GrantAddsCopyOnce(t *testing.T) {
	m := eventTestMap(t)
	inv := &fakeInventory{}
	wand := NewItem("Magic wand")
	ev := ScriptedEvent{Kind: EventGrant, Grant: wand, Text: "A wizard appears."}

	assert.Equal(t, "A wizard appears.", ev.Trigger(inv, m))
	ev.Trigger(inv, m)

	require.Len(t, inv.items, 1)
	assert.Equal(t, "Magic wand", inv.items[0].Description)
	assert.NotSame(t, wand, inv.items[0])
}
