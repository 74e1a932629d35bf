package main

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// provideMap loads the configured map, or the built-in forest.
func provideMap(game config.GameConfig) (*world.Map, error) {
	if game.MapFile == "" {
		return world.DefaultMap()
	}
	return world.LoadMapFromFile(game.MapFile)
}

func provideRegistry(game config.GameConfig) (*command.Registry, error) {
	return command.NewRegistry(command.BuiltinCommands(), command.WithPhonetic(game.FuzzyMatching))
}

func provideEngine(
	io engine.InputOutput,
	m *world.Map,
	registry *command.Registry,
	game config.GameConfig,
	logger *zap.Logger,
) *engine.Engine {
	return engine.New(io, m,
		engine.WithLogger(logger),
		engine.WithRegistry(registry),
		engine.WithSuggestions(game.Suggestions),
	)
}
