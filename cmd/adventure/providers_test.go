package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/console"
)

func TestInitializeEngine_DefaultMap(t *testing.T) {
	var out strings.Builder
	cfg := config.Default()
	e, err := initializeEngine(cfg, console.New(strings.NewReader("go north\nquit\n"), &out), zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, "forest", e.Map().Name)
	assert.Contains(t, out.String(), "You are at the edge of a forest.")
	assert.Contains(t, out.String(), "Bye!")
}

func TestInitializeEngine_MapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
map:
  name: cell
  start: [0, 0]
  locations:
    - at: [0, 0]
      description: You are in a cell.
`), 0o600))

	cfg := config.Default()
	cfg.Game.MapFile = path
	e, err := initializeEngine(cfg, console.New(strings.NewReader(""), &strings.Builder{}), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "cell", e.Map().Name)
}

func TestInitializeEngine_MissingMap(t *testing.T) {
	cfg := config.Default()
	cfg.Game.MapFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := initializeEngine(cfg, console.New(strings.NewReader(""), &strings.Builder{}), zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestProvideRegistry_FuzzyMatchingToggle(t *testing.T) {
	cfg := config.Default()
	cfg.Game.FuzzyMatching = false
	r, err := provideRegistry(cfg.Game)
	require.NoError(t, err)
	_, ok := r.Resolve("hed")
	assert.False(t, ok)

	cfg.Game.FuzzyMatching = true
	r, err = provideRegistry(cfg.Game)
	require.NoError(t, err)
	_, ok = r.Resolve("hed")
	assert.True(t, ok)
}
