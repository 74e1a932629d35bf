// Package server runs the adventure server's listeners under one
// lifecycle and serves the operational HTTP endpoints.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Service is a listener run by a Lifecycle. Start blocks while the
// service is serving; Stop makes Start return.
type Service interface {
	Start() error
	Stop()
}

// FuncService builds a Service from a pair of closures.
type FuncService struct {
	StartFn func() error
	StopFn  func()
}

// Start runs StartFn.
func (f *FuncService) Start() error { return f.StartFn() }

// Stop runs StopFn.
func (f *FuncService) Stop() { f.StopFn() }

type registration struct {
	name string
	svc  Service
}

// Lifecycle starts its registered services together and stops them
// last-added first.
type Lifecycle struct {
	logger *zap.Logger

	mu   sync.Mutex
	regs []registration
}

// NewLifecycle returns an empty Lifecycle.
//
// Precondition: logger must be non-nil.
func NewLifecycle(logger *zap.Logger) *Lifecycle {
	return &Lifecycle{logger: logger}
}

// Add registers svc under name.
//
// Precondition: name must be non-empty; svc must be non-nil.
func (l *Lifecycle) Add(name string, svc Service) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.regs = append(l.regs, registration{name: name, svc: svc})
}

// Run starts every registered service and waits for SIGINT, SIGTERM,
// ctx cancellation or the first service failure.
//
// Postcondition: Every service has been stopped. Returns the failure
// that ended the run, or nil.
func (l *Lifecycle) Run(ctx context.Context) error {
	began := time.Now()

	l.mu.Lock()
	regs := append([]registration(nil), l.regs...)
	l.mu.Unlock()

	failures := make(chan error, len(regs))
	for _, r := range regs {
		go l.serve(r, failures)
	}
	l.logger.Info("services running", zap.Int("count", len(regs)))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	var failure error
	select {
	case sig := <-signals:
		l.logger.Info("shutting down on signal", zap.Stringer("signal", sig))
	case failure = <-failures:
		l.logger.Error("shutting down after service failure", zap.Error(failure))
	case <-ctx.Done():
		l.logger.Info("shutting down on context cancellation")
	}

	for i := len(regs) - 1; i >= 0; i-- {
		l.stop(regs[i])
	}
	l.logger.Info("all services stopped", zap.Duration("uptime", time.Since(began)))
	return failure
}

func (l *Lifecycle) serve(r registration, failures chan<- error) {
	log := l.logger.With(zap.String("service", r.name))
	log.Info("starting service")
	if err := r.svc.Start(); err != nil {
		log.Error("service failed", zap.Error(err))
		failures <- fmt.Errorf("service %s: %w", r.name, err)
	}
}

func (l *Lifecycle) stop(r registration) {
	began := time.Now()
	r.svc.Stop()
	l.logger.Info("service stopped",
		zap.String("service", r.name),
		zap.Duration("elapsed", time.Since(began)),
	)
}
