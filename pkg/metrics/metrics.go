package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus instrumentation for the collection
// pipeline
type Metrics struct {
	CollectionsTotal prometheus.Counter
	ItemsCollected   prometheus.Counter
	EmergenciesTotal *prometheus.CounterVec
	FetchDuration    prometheus.Histogram
	ActiveSessions   prometheus.Gauge
}

// New creates and registers all pipeline metrics
func New() *Metrics {
	return &Metrics{
		CollectionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "feedwatch_collections_total",
			Help: "Total number of collection passes",
		}),
		ItemsCollected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "feedwatch_items_collected_total",
			Help: "Total number of feed items collected",
		}),
		EmergenciesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "feedwatch_emergencies_total",
			Help: "Total number of detected emergencies by urgency level",
		}, []string{"urgency"}),
		FetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "feedwatch_fetch_duration_ms",
			Help:    "Per-source fetch duration in milliseconds",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 15000},
		}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "feedwatch_active_sessions",
			Help: "Number of active monitoring sessions",
		}),
	}
}

// RecordCollection increments the collection pass counter
func (m *Metrics) RecordCollection() { m.CollectionsTotal.Inc() }

// RecordItems adds to the collected items counter
func (m *Metrics) RecordItems(n int) { m.ItemsCollected.Add(float64(n)) }

// RecordEmergency counts one detected emergency
func (m *Metrics) RecordEmergency(urgency string) {
	m.EmergenciesTotal.WithLabelValues(urgency).Inc()
}

// RecordFetchDuration records one per-source fetch duration
func (m *Metrics) RecordFetchDuration(ms float64) { m.FetchDuration.Observe(ms) }

// SessionStarted bumps the active session gauge
func (m *Metrics) SessionStarted() { m.ActiveSessions.Inc() }

// SessionStopped drops the active session gauge
func (m *Metrics) SessionStopped() { m.ActiveSessions.Dec() }
