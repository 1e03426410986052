package analytics

import (
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// Summary is every derived view of the analytics page in one payload.
type Summary struct {
	TotalDetections   int             `json:"total_detections"`
	LargeHazards      int             `json:"large_hazards"`
	AverageConfidence float64         `json:"average_confidence"`
	Categories        CategoryCounts  `json:"categories"`
	Distribution      []CategoryShare `json:"distribution"`
	Status            StatusCounts    `json:"status"`
	TimeSeries        []Point         `json:"time_series"`
	Rows              []ProgressRow   `json:"rows"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// Summarize derives every view from records. An empty list produces a
// zero-valued summary with empty (non-nil) slices.
func Summarize(records []domain.DisplayRecord) Summary {
	counts := GroupByCategory(records)
	return Summary{
		TotalDetections:   len(records),
		LargeHazards:      counts.C,
		AverageConfidence: AverageConfidence(records),
		Categories:        counts,
		Distribution:      Distribution(records),
		Status:            GroupByStatus(records),
		TimeSeries:        TimeSeries(records),
		Rows:              ProgressRows(records),
		GeneratedAt:       clock.Now().UTC(),
	}
}
