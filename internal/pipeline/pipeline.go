package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/couchcryptid/pothole-dashboard/internal/observability"
)

// RecordSource reads stored detections.
type RecordSource interface {
	ListAll(ctx context.Context) ([]domain.Detection, error)
	Ping(ctx context.Context) error
}

// Pipeline is the read path between the store and its consumers: list,
// validate, convert, and optionally enrich or publish.
type Pipeline struct {
	source   RecordSource
	geocoder domain.Geocoder
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline. Pass a nil geocoder to disable detail enrichment.
func New(source RecordSource, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:   source,
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness returns nil when the store is reachable.
func (p *Pipeline) CheckReadiness(ctx context.Context) error {
	if err := p.source.Ping(ctx); err != nil {
		return fmt.Errorf("store not reachable: %w", err)
	}
	return nil
}

// Detections lists every record in store order and converts it for display.
// Malformed rows are logged and left out; the rest are still returned.
// Store failures are returned wrapped in domain.ErrStorageUnavailable.
func (p *Pipeline) Detections(ctx context.Context) ([]domain.DisplayRecord, error) {
	start := time.Now()

	rows, err := p.source.ListAll(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			p.metrics.StorageErrors.Inc()
		}
		return nil, err
	}

	records := transformAll(rows, func(d domain.Detection, err error) {
		p.logger.Warn("malformed record, skipping",
			"record_id", d.ID,
			"error", err,
		)
		p.metrics.MalformedRecords.Inc()
	})

	p.metrics.ListDuration.Observe(time.Since(start).Seconds())
	return records, nil
}

// Detail returns the detail payload for one record, enriched with reverse
// geocoding when a geocoder is configured. Returns domain.ErrNotFound when
// no well-formed record has the id.
func (p *Pipeline) Detail(ctx context.Context, id string) (domain.DetectionDetail, error) {
	records, err := p.Detections(ctx)
	if err != nil {
		return domain.DetectionDetail{}, err
	}

	for _, r := range records {
		if r.ID == id {
			detail := domain.NewDetectionDetail(r)
			return domain.EnrichWithGeocoding(ctx, detail, p.geocoder, p.logger), nil
		}
	}
	return domain.DetectionDetail{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}
