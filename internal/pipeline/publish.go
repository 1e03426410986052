package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/couchcryptid/storm-data-shared/retry"
)

// BatchLoader writes multiple display records to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, records []domain.DisplayRecord) error
}

// PublishOptions tunes Publish. Zero values fall back to the defaults below.
type PublishOptions struct {
	BatchSize   int
	MaxAttempts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
}

const (
	defaultPublishBatchSize = 50
	defaultMaxAttempts      = 5
	defaultBackoff          = 200 * time.Millisecond
	defaultMaxBackoff       = 5 * time.Second
)

func (o PublishOptions) withDefaults() PublishOptions {
	if o.BatchSize <= 0 {
		o.BatchSize = defaultPublishBatchSize
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.Backoff <= 0 {
		o.Backoff = defaultBackoff
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = defaultMaxBackoff
	}
	return o
}

// Publish sends every well-formed record to loader in batches and returns the
// number of records written. A failed batch is retried with exponential
// backoff; after the last attempt the error is returned along with the count
// of records already written.
func (p *Pipeline) Publish(ctx context.Context, loader BatchLoader, opts PublishOptions) (int, error) {
	opts = opts.withDefaults()

	records, err := p.Detections(ctx)
	if err != nil {
		return 0, err
	}

	p.logger.Info("publishing records", "count", len(records), "batch_size", opts.BatchSize)

	published := 0
	for start := 0; start < len(records); start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(records))
		batch := records[start:end]

		if err := p.loadWithRetry(ctx, loader, batch, opts); err != nil {
			return published, err
		}
		published += len(batch)
		p.metrics.PublishedRecords.Add(float64(len(batch)))
	}
	return published, nil
}

func (p *Pipeline) loadWithRetry(ctx context.Context, loader BatchLoader, batch []domain.DisplayRecord, opts PublishOptions) error {
	backoff := opts.Backoff
	var err error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err = loader.LoadBatch(ctx, batch); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.logger.Error("load batch failed", "error", err, "batch_size", len(batch), "attempt", attempt)
		if attempt == opts.MaxAttempts {
			break
		}
		if !retry.SleepWithContext(ctx, backoff) {
			return ctx.Err()
		}
		backoff = retry.NextBackoff(backoff, opts.MaxBackoff)
	}
	return fmt.Errorf("load batch after %d attempts: %w", opts.MaxAttempts, err)
}
