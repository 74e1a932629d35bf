// Package main plays the adventure on the local terminal, either as a
// plain line-oriented console or as a full-screen interface.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/console"
	"github.com/cory-johannsen/adventure/internal/frontend/tui"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	mapPath := flag.String("map", "", "path to a YAML map; overrides game.map_file")
	useTUI := flag.Bool("tui", false, "play in the full-screen interface")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *mapPath != "" {
		cfg.Game.MapFile = *mapPath
	}
	// The terminal belongs to the game; only errors reach stderr.
	if cfg.Logging.Output == "stderr" {
		cfg.Logging.Level = "error"
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *useTUI {
		err = tui.Run(ctx, "Adventure", func(ctx context.Context, tio engine.InputOutput) error {
			e, err := initializeEngine(cfg, tio, logger)
			if err != nil {
				return err
			}
			return e.Run(ctx)
		})
	} else {
		err = playConsole(ctx, cfg, logger)
	}
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		logger.Error("game failed", zap.Error(err))
		log.Fatalf("adventure: %v", err)
	}
}

func playConsole(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	out := console.New(os.Stdin, os.Stdout,
		console.WithDelay(cfg.Game.TypewriterDelay),
		console.WithWrapWidth(cfg.Game.WrapWidth),
	)
	e, err := initializeEngine(cfg, out, logger)
	if err != nil {
		return err
	}
	return e.Run(ctx)
}
