package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// ListAll returns every record, newest capture first.
// Returns an empty slice (not nil) when the table is empty. Bad field values
// never fail the listing; they surface through domain.Detection.Validate.
func (s *Store) ListAll(ctx context.Context) ([]domain.Detection, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.listSQL())
	if err != nil {
		return nil, unavailable("query detections", err)
	}
	defer rows.Close()

	detections := []domain.Detection{}
	for rows.Next() {
		d, err := scanDetection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detection: %w", err)
		}
		detections = append(detections, d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate detections", err)
	}

	return detections, nil
}

// scanDetection reads one row. This is the only place the stored status
// column is turned into a bool, and "timestamp" into CapturedAt.
func scanDetection(rows *sql.Rows) (domain.Detection, error) {
	var (
		id, imageName, category, capturedAt   sql.NullString
		status, confA, confB, confC, lat, lng any
	)
	if err := rows.Scan(&id, &imageName, &status, &category, &confA, &confB, &confC, &capturedAt, &lat, &lng); err != nil {
		return domain.Detection{}, err
	}

	hazard, ok := boolOrInvalid(status)
	return domain.Detection{
		ID:             id.String,
		ImageName:      imageName.String,
		HazardDetected: hazard,
		StatusInvalid:  !ok,
		Category:       domain.Category(category.String),
		Confidence: domain.Confidence{
			A: floatOrNaN(confA),
			B: floatOrNaN(confB),
			C: floatOrNaN(confC),
		},
		CapturedAt: capturedAt.String,
		Latitude:   floatOrNaN(lat),
		Longitude:  floatOrNaN(lng),
	}, nil
}

// floatOrNaN converts a scanned REAL column. NULL and non-numeric values
// become NaN instead of failing the scan, so one bad field only affects its row.
func floatOrNaN(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case []byte:
		return parseFloatOrNaN(string(x))
	case string:
		return parseFloatOrNaN(x)
	default:
		return math.NaN()
	}
}

// boolOrInvalid converts a scanned status column. Integers follow SQLite's
// boolean convention (zero is false); text must parse with strconv.ParseBool.
// NULL and anything else report ok=false.
func boolOrInvalid(v any) (value, ok bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case int64:
		return x != 0, true
	case float64:
		return x != 0, true
	case []byte:
		return parseBoolOrInvalid(string(x))
	case string:
		return parseBoolOrInvalid(x)
	default:
		return false, false
	}
}

func parseBoolOrInvalid(s string) (value, ok bool) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return b, true
}

func parseFloatOrNaN(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
