package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names and labels.
const (
	MetricNameCommandsTotal  = "adventure_commands_total"
	MetricNameSessionsActive = "adventure_sessions_active"
	LabelHandler             = "handler"
)

// Metrics records game activity on a private Prometheus registry.
// All methods are safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	sessions prometheus.Gauge
}

// NewMetrics creates the game metrics and registers them, together with the
// Go runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameCommandsTotal,
				Help: "Player commands dispatched, by handler.",
			},
			[]string{LabelHandler},
		),
		sessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricNameSessionsActive,
				Help: "Games currently being played.",
			},
		),
	}
}

// CommandHandled counts one dispatched command.
func (m *Metrics) CommandHandled(handler string) {
	m.commands.WithLabelValues(handler).Inc()
}

// SessionStarted increments the active session gauge.
func (m *Metrics) SessionStarted() {
	m.sessions.Inc()
}

// SessionEnded decrements the active session gauge.
func (m *Metrics) SessionEnded() {
	m.sessions.Dec()
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
