// Package metrics provides Prometheus instrumentation for the project store.
//
// Collectors are registered on a caller-supplied registerer so that several
// boards, and tests, can live in one process. A nil *Metrics is valid and
// records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projectboard"

// Reasons a move request was ignored.
const (
	ReasonUnknownID = "unknown_id"
	ReasonUnchanged = "unchanged"
	ReasonInvalid   = "invalid_status"
)

// Metrics holds the store collectors.
type Metrics struct {
	ProjectsAdded   prometheus.Counter
	ProjectMoves    *prometheus.CounterVec
	MovesIgnored    *prometheus.CounterVec
	Notifications   prometheus.Counter
	ListenerPanics  prometheus.Counter
	ListenersActive prometheus.Gauge
}

// New creates the store collectors and registers them on reg.
//
// Registering twice on the same registerer panics, as with any Prometheus
// collector; use a fresh [prometheus.Registry] per board.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ProjectsAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projects_added_total",
			Help:      "Total number of projects added to the store",
		}),
		ProjectMoves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "project_moves_total",
			Help:      "Total number of committed status transitions",
		}, []string{"status"}),
		MovesIgnored: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "project_moves_ignored_total",
			Help:      "Total number of move requests that changed nothing",
		}, []string{"reason"}),
		Notifications: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of snapshots delivered to listeners",
		}),
		ListenerPanics: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listener_panics_total",
			Help:      "Total number of listener invocations that panicked",
		}),
		ListenersActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "listeners",
			Help:      "Number of registered listeners",
		}),
	}
}

// IncAdded records a new project.
func (m *Metrics) IncAdded() {
	if m == nil {
		return
	}
	m.ProjectsAdded.Inc()
}

// IncMoved records a committed transition to status.
func (m *Metrics) IncMoved(status string) {
	if m == nil {
		return
	}
	m.ProjectMoves.WithLabelValues(status).Inc()
}

// IncIgnored records a move that was a no-op.
func (m *Metrics) IncIgnored(reason string) {
	if m == nil {
		return
	}
	m.MovesIgnored.WithLabelValues(reason).Inc()
}

// IncNotified records one snapshot delivered to one listener.
func (m *Metrics) IncNotified() {
	if m == nil {
		return
	}
	m.Notifications.Inc()
}

// IncPanics records a listener panic.
func (m *Metrics) IncPanics() {
	if m == nil {
		return
	}
	m.ListenerPanics.Inc()
}

// SetListeners records the current number of registrations.
func (m *Metrics) SetListeners(n int) {
	if m == nil {
		return
	}
	m.ListenersActive.Set(float64(n))
}
