// Package metrics exposes Prometheus collectors for match recomputation and listing processing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

const namespace = "baxpro"

// Recompute and listing outcome labels.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultNotFound = "not_found"
	ResultRejected = "rejected"
)

// Metrics groups the collectors shared by the scheduler and the listing worker.
type Metrics struct {
	recomputeDuration prometheus.Histogram
	recomputeResults  *prometheus.CounterVec
	queueDepth        prometheus.Gauge
	matchesPerAlert   prometheus.Histogram
	listingsProcessed *prometheus.CounterVec
	listingAlerts     prometheus.Counter
}

// NewRegistry returns a registry with the Go runtime and process collectors registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers every collector on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		recomputeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "recompute_duration_seconds",
			Help:      "Time spent recomputing the match set of one alert.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
		recomputeResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "recompute_total",
			Help:      "Recomputations by result.",
		}, []string{"result"}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "queue_depth",
			Help:      "Alerts waiting for recomputation.",
		}),
		matchesPerAlert: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matcher",
			Name:      "matches_per_alert",
			Help:      "Number of matching listings found per recomputation.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		}),
		listingsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "listing_worker",
			Name:      "listings_total",
			Help:      "Incoming listings by result.",
		}, []string{"result"}),
		listingAlerts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "listing_worker",
			Name:      "alert_matches_total",
			Help:      "Alert matches recorded for incoming listings.",
		}),
	}
}

// ObserveRecompute records one recomputation. matched is ignored unless result is success.
func (m *Metrics) ObserveRecompute(result string, elapsed time.Duration, matched int) {
	if m == nil {
		return
	}

	m.recomputeResults.WithLabelValues(result).Inc()
	m.recomputeDuration.Observe(elapsed.Seconds())
	if result == ResultSuccess {
		m.matchesPerAlert.Observe(float64(matched))
	}
}

// CountRecompute records a recomputation outcome that never reached the database.
func (m *Metrics) CountRecompute(result string) {
	if m == nil {
		return
	}

	m.recomputeResults.WithLabelValues(result).Inc()
}

// SetQueueDepth reports the number of pending recomputations.
func (m *Metrics) SetQueueDepth(depth int) {
	if m == nil {
		return
	}

	m.queueDepth.Set(float64(depth))
}

// ObserveListing records one processed listing and the alert matches it produced.
func (m *Metrics) ObserveListing(result string, matches int) {
	if m == nil {
		return
	}

	m.listingsProcessed.WithLabelValues(result).Inc()
	m.listingAlerts.Add(float64(matches))
}

// Module provides the registry and collectors.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry, New),
)
