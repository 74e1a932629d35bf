// Package handlers runs adventure games over Telnet sessions.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/telnet"
	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// MapFactory builds a fresh map for one session. Every session mutates
// its own map, so the factory must not return shared instances.
type MapFactory func() (*world.Map, error)

// SessionMetrics observes session activity.
type SessionMetrics interface {
	engine.Recorder
	SessionStarted()
	SessionEnded()
}

// AdventureHandler implements telnet.SessionHandler. Each connection
// plays its own single-player game on a map from the factory.
type AdventureHandler struct {
	newMap   MapFactory
	registry *command.Registry
	game     config.GameConfig
	palette  Palette
	metrics  SessionMetrics
	logger   *zap.Logger
}

// NewAdventureHandler creates a handler.
//
// Precondition: newMap, registry and logger must be non-nil. metrics may be nil.
// Postcondition: Returns a handler ready to serve sessions.
func NewAdventureHandler(
	newMap MapFactory,
	registry *command.Registry,
	game config.GameConfig,
	metrics SessionMetrics,
	logger *zap.Logger,
) *AdventureHandler {
	return &AdventureHandler{
		newMap:   newMap,
		registry: registry,
		game:     game,
		palette:  DefaultPalette(),
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleSession plays one game until the player quits or disconnects.
//
// Postcondition: Returns nil on quit or client disconnect, ctx.Err() when
// the server shuts the session down, or the failure otherwise.
func (h *AdventureHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	logger := h.logger
	if id, ok := telnet.SessionIDFromContext(ctx); ok {
		logger = logger.With(zap.String("session_id", id))
	}

	m, err := h.newMap()
	if err != nil {
		_ = conn.WriteLine(telnet.Colorize(telnet.Red, "The world failed to load. Please try again later."))
		return fmt.Errorf("building map: %w", err)
	}

	tio := NewTelnetIO(conn, h.palette, h.game.WrapWidth)
	if err := tio.Write(engine.StyleHelp, welcome(m), true); err != nil {
		return fmt.Errorf("sending welcome: %w", err)
	}

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithRegistry(h.registry),
		engine.WithSuggestions(h.game.Suggestions),
	}
	if h.metrics != nil {
		opts = append(opts, engine.WithRecorder(h.metrics))
		h.metrics.SessionStarted()
		defer h.metrics.SessionEnded()
	}

	err = engine.New(tio, m, opts...).Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		logger.Info("player disconnected")
		return nil
	case ctx.Err() != nil:
		_ = conn.WriteLine("")
		_ = conn.WriteLine(telnet.Colorize(telnet.Yellow, "Server shutting down. Goodbye!"))
		return ctx.Err()
	default:
		return err
	}
}

func welcome(m *world.Map) string {
	name := m.Name
	if name == "" {
		name = "the adventure"
	}
	return fmt.Sprintf("Welcome to %s. Type help for a list of commands.\n", name)
}
