// Package metrics holds the Prometheus collectors of the dispatch service.
// Constructors return unregistered collectors; the app container registers them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/repository"
)

// NewPropagationDroppedTotal counts store changes dropped because the propagation buffer was full
func NewPropagationDroppedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_propagation_dropped_total",
		Help: "Total number of assignment changes dropped because the propagation buffer was full",
	})
}

// NewSinkRetriesTotal counts retry attempts performed against propagation sinks
func NewSinkRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_sink_retries_total",
		Help: "Total number of retry attempts performed by propagation sinks",
	})
}

// NewSinkFailuresTotal counts changes a sink finally failed to apply, by sink
func NewSinkFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_sink_failures_total",
		Help: "Total number of assignment changes a sink failed to apply",
	}, []string{"sink"})
}

// NewMutationsTotal counts store mutations by kind
func NewMutationsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_mutations_total",
		Help: "Total number of assignment store mutations",
	}, []string{"kind"})
}

// NewAssignmentsByStatus reports the current number of assignments per status
func NewAssignmentsByStatus() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "assignments",
		Help: "Current number of assignments by status",
	}, []string{"status"})
}

// Store groups the collectors fed by store changes.
type Store struct {
	Mutations *prometheus.CounterVec
	ByStatus  *prometheus.GaugeVec
}

// NewStore creates the store collectors.
func NewStore() *Store {
	return &Store{
		Mutations: NewMutationsTotal(),
		ByStatus:  NewAssignmentsByStatus(),
	}
}

// Collectors returns every collector of s for registration.
func (s *Store) Collectors() []prometheus.Collector {
	return []prometheus.Collector{s.Mutations, s.ByStatus}
}

// Reset sets the status gauge from a full list, used once at boot.
func (s *Store) Reset(list []domain.Assignment) {
	for _, st := range domain.Statuses {
		s.ByStatus.WithLabelValues(string(st)).Set(0)
	}
	for _, a := range list {
		s.ByStatus.WithLabelValues(string(a.Status)).Inc()
	}
}

// Observe is a repository.Listener that keeps the collectors current.
func (s *Store) Observe(c repository.Change) {
	s.Mutations.WithLabelValues(string(c.Kind)).Inc()
	s.Reset(c.Snapshot)
}
