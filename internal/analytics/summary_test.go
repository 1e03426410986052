package analytics_test

import (
	"testing"
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/analytics"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Seed(t *testing.T) {
	fixed := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
	analytics.SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { analytics.SetClock(nil) })

	s := analytics.Summarize(seedRecords())

	assert.Equal(t, 30, s.TotalDetections)
	assert.Equal(t, 10, s.LargeHazards)
	assert.InDelta(t, 93.638667, s.AverageConfidence, 1e-4)
	assert.Equal(t, analytics.StatusCounts{Hazard: 20, Clear: 10}, s.Status)
	assert.Equal(t, s.TotalDetections, s.Categories.Total())
	assert.Len(t, s.TimeSeries, 30)
	assert.Len(t, s.Rows, 30)
	require.Len(t, s.Distribution, 3)
	assert.Equal(t, fixed, s.GeneratedAt)
}

func TestSummarize_Empty(t *testing.T) {
	s := analytics.Summarize(nil)

	assert.Zero(t, s.TotalDetections)
	assert.Zero(t, s.AverageConfidence)
	assert.NotNil(t, s.TimeSeries)
	assert.NotNil(t, s.Rows)
	assert.Len(t, s.Distribution, 3)
}
