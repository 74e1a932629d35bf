// Package main serves the adventure over Telnet. Every connection plays
// its own copy of the map; Prometheus metrics and health checks are
// served over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/handlers"
	"github.com/cory-johannsen/adventure/internal/frontend/telnet"
	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/world"
	"github.com/cory-johannsen/adventure/internal/observability"
	"github.com/cory-johannsen/adventure/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	mapPath := flag.String("map", "", "path to a YAML map; overrides game.map_file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *mapPath != "" {
		cfg.Game.MapFile = *mapPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	newMap, err := world.NewMapFactory(cfg.Game.MapFile)
	if err != nil {
		logger.Fatal("loading map", zap.String("map_file", cfg.Game.MapFile), zap.Error(err))
	}
	registry, err := command.NewRegistry(command.BuiltinCommands(), command.WithPhonetic(cfg.Game.FuzzyMatching))
	if err != nil {
		logger.Fatal("building command registry", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	handler := handlers.NewAdventureHandler(newMap, registry, cfg.Game, metrics, logger)
	acceptor := telnet.NewAcceptor(cfg.Telnet, handler, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("telnet", &server.FuncService{
		StartFn: acceptor.ListenAndServe,
		StopFn:  acceptor.Stop,
	})
	if cfg.Metrics.Enabled {
		router := server.NewOpsRouter(metrics.Handler(), acceptor.IsRunning, logger)
		lifecycle.Add("metrics", server.NewHTTPService(cfg.Metrics.Addr(), router, logger))
	}

	logger.Info("adventure server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.String("map_file", cfg.Game.MapFile),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
