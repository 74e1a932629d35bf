//go:build wireinject

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/engine"
)

func initializeEngine(cfg config.Config, io engine.InputOutput, logger *zap.Logger) (*engine.Engine, error) {
	wire.Build(
		wire.FieldsOf(new(config.Config), "Game"),
		provideMap,
		provideRegistry,
		provideEngine,
	)
	return nil, nil
}
