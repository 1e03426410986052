package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/couchcryptid/pothole-dashboard/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLoader struct {
	batches  [][]domain.DisplayRecord
	failures int // fail this many calls before succeeding
	err      error
	calls    int
}

func (m *mockLoader) LoadBatch(_ context.Context, records []domain.DisplayRecord) error {
	m.calls++
	if m.calls <= m.failures {
		return m.err
	}
	m.batches = append(m.batches, append([]domain.DisplayRecord(nil), records...))
	return nil
}

func fastRetry(batchSize int) pipeline.PublishOptions {
	return pipeline.PublishOptions{
		BatchSize:   batchSize,
		MaxAttempts: 3,
		Backoff:     time.Millisecond,
		MaxBackoff:  2 * time.Millisecond,
	}
}

func TestPipeline_Publish_Batches(t *testing.T) {
	ldr := &mockLoader{}
	metrics := newTestMetrics()
	p := pipeline.New(seedSource(), nil, slog.Default(), metrics)

	n, err := p.Publish(context.Background(), ldr, fastRetry(12))
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	require.Len(t, ldr.batches, 3)
	assert.Len(t, ldr.batches[0], 12)
	assert.Len(t, ldr.batches[1], 12)
	assert.Len(t, ldr.batches[2], 6)
	assert.Equal(t, "DATA1", ldr.batches[0][0].ID)
	assert.InDelta(t, 30.0, testutil.ToFloat64(metrics.PublishedRecords), 0)
}

func TestPipeline_Publish_DefaultBatchSize(t *testing.T) {
	ldr := &mockLoader{}
	p := pipeline.New(seedSource(), nil, slog.Default(), newTestMetrics())

	n, err := p.Publish(context.Background(), ldr, pipeline.PublishOptions{})
	require.NoError(t, err)
	assert.Equal(t, 30, n)
	assert.Len(t, ldr.batches, 1)
}

func TestPipeline_Publish_RetriesThenSucceeds(t *testing.T) {
	ldr := &mockLoader{failures: 2, err: errors.New("broker unavailable")}
	p := pipeline.New(seedSource(), nil, slog.Default(), newTestMetrics())

	n, err := p.Publish(context.Background(), ldr, fastRetry(50))
	require.NoError(t, err)
	assert.Equal(t, 30, n)
	assert.Equal(t, 3, ldr.calls)
}

func TestPipeline_Publish_GivesUp(t *testing.T) {
	ldr := &mockLoader{failures: 100, err: errors.New("broker unavailable")}
	metrics := newTestMetrics()
	p := pipeline.New(seedSource(), nil, slog.Default(), metrics)

	n, err := p.Publish(context.Background(), ldr, fastRetry(10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "broker unavailable")
	assert.Zero(t, n)
	assert.Equal(t, 3, ldr.calls)
	assert.InDelta(t, 0.0, testutil.ToFloat64(metrics.PublishedRecords), 0)
}

func TestPipeline_Publish_StorageUnavailable(t *testing.T) {
	src := &mockSource{err: domain.ErrStorageUnavailable}
	ldr := &mockLoader{}
	p := pipeline.New(src, nil, slog.Default(), newTestMetrics())

	_, err := p.Publish(context.Background(), ldr, fastRetry(10))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Zero(t, ldr.calls)
}

func TestPipeline_Publish_ContextCanceled(t *testing.T) {
	ldr := &mockLoader{failures: 100, err: errors.New("broker unavailable")}
	p := pipeline.New(seedSource(), nil, slog.Default(), newTestMetrics())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Publish(ctx, ldr, pipeline.PublishOptions{Backoff: time.Hour})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, ldr.calls)
}
