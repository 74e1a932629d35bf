package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

func TestForestPlaythrough(t *testing.T) {
	m, err := world.DefaultMap()
	require.NoError(t, err)

	fake := newScriptedIO(
		"go west",
		"go north", "go north",
		"take axe",
		"go west",
		"use axe",
		"go west",
		"go east",
		"go west",
		"go north", "go north",
		"go south",
		"bye",
	)
	e := newTestEngine(t, m, fake)
	require.NoError(t, e.Run(context.Background()))

	assert.Contains(t, fake.writes, written{Style: StyleError, Text: "I can't move in the direction west.\n", NewLine: true})
	assert.Contains(t, fake.writes, written{Style: StyleResponse, Text: "You chop down the tree, and luckily it makes a bridge across the river. Woohoo!\n", NewLine: true})
	assert.Contains(t, fake.writes, written{Style: StyleEvent, Text: "There is a crash and the tree collapses into the river.", NewLine: true})
	assert.Contains(t, fake.writes, written{Style: StyleError, Text: "You are unable to get across the river.\n", NewLine: true})
	assert.Contains(t, fake.writes, written{Style: StyleEvent, Text: "A wizard walks towards you and hands you a magic wand. Then he buggers off.", NewLine: true})
	assert.Contains(t, fake.writes, written{Style: StyleError, Text: "The drawbridge is up.\n", NewLine: true})

	assert.Equal(t, world.Coords{X: -3, Y: 4}, e.Position())
	assert.Equal(t, []string{"Axe", "Magic wand"}, e.Inventory().Names())

	river, _ := m.At(world.Coords{X: -1, Y: 2})
	assert.Equal(t, "You are at the edge of a river. There is a tree that you murdered crossing it. Convenient.", river.Description)
	assert.False(t, river.Accessible)
}

func TestForest_RiverbankBlockedBeforeChopping(t *testing.T) {
	m, err := world.DefaultMap()
	require.NoError(t, err)

	fake := newScriptedIO()
	e := newTestEngine(t, m, fake)
	e.Do("go north")
	e.Do("go north")
	e.Do("go west")
	fake.reset()
	e.Do("go west")

	assert.Equal(t, "You are unable to get across the river.\n\n", fake.transcript())
	assert.Equal(t, world.Coords{X: -1, Y: 2}, e.Position())
}
