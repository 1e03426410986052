package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.MalformedRecords.Inc()

	assert.InDelta(t, 1.0, testutil.ToFloat64(a.MalformedRecords), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(b.MalformedRecords), 0)
}

func TestMetrics_RegisterWithNamespace(t *testing.T) {
	m := NewMetricsForTesting()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(m.StorageErrors))
	m.StorageErrors.Inc()

	n, err := testutil.GatherAndCount(reg, "pothole_dashboard_storage_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_RouteLabels(t *testing.T) {
	m := NewMetricsForTesting()
	m.APIRequests.WithLabelValues("detections").Inc()
	m.APIRequests.WithLabelValues("detections").Inc()
	m.APIRequests.WithLabelValues("analytics").Inc()

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("detections")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.APIRequests))
}

func TestMetrics_AllCollectorsListed(t *testing.T) {
	m := NewMetricsForTesting()
	reg := prometheus.NewRegistry()
	for _, c := range m.collectors() {
		require.NoError(t, reg.Register(c))
	}
	assert.Len(t, m.collectors(), 11)
}

func TestNewMetricsWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)
	m.SeededRecords.Add(30)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "pothole_dashboard_seeded_records_total" {
			found = true
			assert.InDelta(t, 30.0, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	assert.True(t, found)

	assert.Panics(t, func() { NewMetricsWithRegistry(reg) }, "duplicate registration")
}
