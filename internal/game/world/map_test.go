package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMap(t *testing.T) {
	a := NewLocation(Coords{X: 0, Y: 0}, "A.")
	b := NewLocation(Coords{X: 0, Y: 1}, "B.")
	m, err := NewMap(Coords{}, a, b)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, Coords{}, m.Start())
	got, ok := m.At(Coords{X: 0, Y: 1})
	assert.True(t, ok)
	assert.Same(t, b, got)
	_, ok = m.At(Coords{X: 9, Y: 9})
	assert.False(t, ok)
	assert.Equal(t, []*Location{a, b}, m.Locations())
}

func TestNewMap_DuplicateCoords(t *testing.T) {
	_, err := NewMap(Coords{},
		NewLocation(Coords{}, "A."),
		NewLocation(Coords{}, "A again."),
	)
	assert.ErrorIs(t, err, ErrDuplicateCoords)
}

func TestNewMap_MissingStart(t *testing.T) {
	_, err := NewMap(Coords{X: 5, Y: 5}, NewLocation(Coords{}, "A."))
	assert.ErrorIs(t, err, ErrLocationNotFound)
}
