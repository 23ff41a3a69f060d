// Package metrics defines the Prometheus metrics for person operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the domain counters. Construct it once per registry.
type Metrics struct {
	PeopleCreated      prometheus.Counter
	CreateConflicts    prometheus.Counter
	ValidationFailures prometheus.Counter
	CacheLookups       *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PeopleCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "people_created_total",
			Help: "Total number of people created",
		}),
		CreateConflicts: f.NewCounter(prometheus.CounterOpts{
			Name: "people_create_conflicts_total",
			Help: "Total number of creates rejected for a duplicate nickname",
		}),
		ValidationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "people_validation_failures_total",
			Help: "Total number of creates rejected by field validation",
		}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "people_cache_lookups_total",
			Help: "Person cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

// IncrementCreated increments the people created counter by 1.
func (m *Metrics) IncrementCreated() {
	m.PeopleCreated.Inc()
}

// IncrementConflicts increments the duplicate nickname counter by 1.
func (m *Metrics) IncrementConflicts() {
	m.CreateConflicts.Inc()
}

// IncrementValidationFailures increments the validation failure counter by 1.
func (m *Metrics) IncrementValidationFailures() {
	m.ValidationFailures.Inc()
}

// ObserveCacheLookup records one cache lookup with result "hit", "miss" or "error".
func (m *Metrics) ObserveCacheLookup(result string) {
	m.CacheLookups.WithLabelValues(result).Inc()
}
