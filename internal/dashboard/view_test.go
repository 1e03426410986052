package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/couchcryptid/pothole-dashboard/internal/analytics"
	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFetcher struct {
	mu      sync.Mutex
	records []domain.DisplayRecord
	err     error
	calls   int
}

func (m *mockFetcher) FetchDetections(_ context.Context) ([]domain.DisplayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.records, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestView_EmptyState(t *testing.T) {
	v := NewView(discardLogger())

	assert.Empty(t, v.Records())
	_, ok := v.Selected()
	assert.False(t, ok)
	assert.Zero(t, v.Summary().TotalDetections)
	assert.Zero(t, v.Summary().AverageConfidence)
}

func TestView_LoadFetchesOnce(t *testing.T) {
	f := &mockFetcher{records: seedRecords()}
	v := NewView(discardLogger())

	require.NoError(t, v.Load(context.Background(), f))
	require.NoError(t, v.Load(context.Background(), f))

	assert.Equal(t, 1, f.calls)
	assert.Len(t, v.Records(), 30)
	assert.Equal(t, 30, v.Summary().TotalDetections)
}

func TestView_LoadConcurrentFetchesOnce(t *testing.T) {
	f := &mockFetcher{records: seedRecords()}
	v := NewView(discardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = v.Load(context.Background(), f)
			_ = v.Summary()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.calls)
}

func TestView_LoadFailureLeavesEmptyState(t *testing.T) {
	f := &mockFetcher{err: errors.New("connection refused")}
	v := NewView(discardLogger())

	err := v.Load(context.Background(), f)
	require.Error(t, err)

	assert.Empty(t, v.Records())
	_, ok := v.Selected()
	assert.False(t, ok)
	assert.Zero(t, v.Summary().TotalDetections)
}

func TestView_SelectsFirstRecordByDefault(t *testing.T) {
	v := NewView(discardLogger())
	v.SetRecords(seedRecords())

	sel, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "DATA1", sel.ID)
}

func TestView_Select(t *testing.T) {
	v := NewView(discardLogger())
	v.SetRecords(seedRecords())

	require.NoError(t, v.Select("DATA7"))
	sel, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "DATA7", sel.ID)

	err := v.Select("DATA99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	sel, _ = v.Selected()
	assert.Equal(t, "DATA7", sel.ID, "failed select keeps the previous selection")
}

func TestView_SetRecordsRecomputesSummary(t *testing.T) {
	v := NewView(discardLogger())
	recs := seedRecords()

	v.SetRecords(recs[:3])
	assert.Equal(t, 3, v.Summary().TotalDetections)

	v.SetRecords(recs)
	assert.Equal(t, 30, v.Summary().TotalDetections)
	assert.Equal(t, 30, v.Summary().Categories.Total())
}

func TestView_SetRecordsKeepsSelection(t *testing.T) {
	v := NewView(discardLogger())
	recs := seedRecords()
	v.SetRecords(recs)
	require.NoError(t, v.Select("DATA5"))

	v.SetRecords(recs[2:])
	sel, _ := v.Selected()
	assert.Equal(t, "DATA5", sel.ID)

	v.SetRecords(recs[10:])
	sel, _ = v.Selected()
	assert.Equal(t, "DATA11", sel.ID, "selection falls back to the first record")
}

func TestView_SetRecordsCopiesInput(t *testing.T) {
	v := NewView(discardLogger())
	recs := seedRecords()
	v.SetRecords(recs)

	recs[0].ID = "mutated"
	assert.Equal(t, "DATA1", v.Records()[0].ID)
}

func TestView_Filter(t *testing.T) {
	v := NewView(discardLogger())
	v.SetRecords(seedRecords())
	require.NoError(t, v.Select("DATA3"))

	hazard := true
	v.SetFilter(analytics.Filter{Category: domain.CategoryLarge, Hazard: &hazard})

	assert.Len(t, v.Records(), 10)
	assert.Equal(t, 10, v.Summary().TotalDetections)
	assert.Equal(t, analytics.CategoryCounts{C: 10}, v.Summary().Categories)

	sel, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "DATA1", sel.ID)

	v.SetFilter(analytics.Filter{})
	assert.Len(t, v.Records(), 30)
}
