package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveRecompute(t *testing.T) {
	m := New(NewRegistry())

	m.ObserveRecompute(ResultSuccess, 20*time.Millisecond, 3)
	m.ObserveRecompute(ResultSuccess, 10*time.Millisecond, 0)
	m.ObserveRecompute(ResultError, 5*time.Millisecond, 0)
	m.CountRecompute(ResultRejected)

	assert.InDelta(t, 2, testutil.ToFloat64(m.recomputeResults.WithLabelValues(ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.recomputeResults.WithLabelValues(ResultError)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.recomputeResults.WithLabelValues(ResultRejected)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.matchesPerAlert))
}

func TestMetrics_QueueDepthAndListings(t *testing.T) {
	m := New(NewRegistry())

	m.SetQueueDepth(7)
	m.ObserveListing(ResultSuccess, 2)
	m.ObserveListing(ResultSuccess, 1)
	m.ObserveListing(ResultError, 0)

	assert.InDelta(t, 7, testutil.ToFloat64(m.queueDepth), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.listingsProcessed.WithLabelValues(ResultSuccess)), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.listingAlerts), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRecompute(ResultSuccess, time.Second, 1)
		m.CountRecompute(ResultRejected)
		m.SetQueueDepth(1)
		m.ObserveListing(ResultSuccess, 1)
	})
}
