// Package analytics derives the dashboard's aggregate views from an in-memory
// list of display records. Every function is pure and is recomputed whenever
// the record list changes.
package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// CategoryCounts holds the number of records per category code.
type CategoryCounts struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
}

// Total is A+B+C.
func (c CategoryCounts) Total() int { return c.A + c.B + c.C }

// Of returns the count for a category code.
func (c CategoryCounts) Of(cat domain.Category) int {
	switch cat {
	case domain.CategorySmall:
		return c.A
	case domain.CategoryMedium:
		return c.B
	case domain.CategoryLarge:
		return c.C
	default:
		return 0
	}
}

// StatusCounts splits records by hazard flag.
type StatusCounts struct {
	Hazard int `json:"hazard"`
	Clear  int `json:"clear"`
}

// Point is one sample of the confidence trend chart.
type Point struct {
	Time       string  `json:"time"`       // HH:MM:SS
	Confidence float64 `json:"confidence"` // max confidence, percent
}

// ProgressRow is the confidence bar shown for one row of the analytics table.
type ProgressRow struct {
	ID      string  `json:"id"`
	Percent float64 `json:"percent"`
	Label   string  `json:"label"` // one decimal, e.g. "99.1%"
}

// CategoryShare is one slice of the hazard distribution chart.
type CategoryShare struct {
	Category domain.Category `json:"category"`
	Name     string          `json:"name"` // "Small (A)"
	Count    int             `json:"count"`
	Share    int             `json:"share"` // whole percent of all records
}

// GroupByCategory counts records per category. Zero counts are valid.
// Records with an unknown code are not counted.
func GroupByCategory(records []domain.DisplayRecord) CategoryCounts {
	var c CategoryCounts
	for _, r := range records {
		switch r.Category {
		case domain.CategorySmall:
			c.A++
		case domain.CategoryMedium:
			c.B++
		case domain.CategoryLarge:
			c.C++
		}
	}
	return c
}

// GroupByStatus counts hazard and clear records.
func GroupByStatus(records []domain.DisplayRecord) StatusCounts {
	var s StatusCounts
	for _, r := range records {
		if r.HazardDetected {
			s.Hazard++
		} else {
			s.Clear++
		}
	}
	return s
}

// TimeSeries pairs each record's time of day with its max confidence as a
// percentage, ordered by time of day. The sort is stable: records sharing a
// time of day keep their input order.
func TimeSeries(records []domain.DisplayRecord) []Point {
	points := make([]Point, len(records))
	for i, r := range records {
		points[i] = Point{
			Time:       domain.TimeOfDay(r.CapturedAt),
			Confidence: domain.MaxConfidence(r) * 100,
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time < points[j].Time
	})
	return points
}

// AverageConfidence is the mean max confidence across records, as a
// percentage. An empty list yields 0.
func AverageConfidence(records []domain.DisplayRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += domain.MaxConfidence(r)
	}
	return sum / float64(len(records)) * 100
}

// ProgressRows returns the per-row confidence bars in input order.
func ProgressRows(records []domain.DisplayRecord) []ProgressRow {
	rows := make([]ProgressRow, len(records))
	for i, r := range records {
		pct := domain.MaxConfidence(r) * 100
		rows[i] = ProgressRow{
			ID:      r.ID,
			Percent: pct,
			Label:   fmt.Sprintf("%.1f%%", pct),
		}
	}
	return rows
}

// Distribution returns one share per known category, in display order.
// Shares are whole percentages of all records and are 0 when the list is empty.
func Distribution(records []domain.DisplayRecord) []CategoryShare {
	counts := GroupByCategory(records)
	out := make([]CategoryShare, 0, 3)
	for _, cat := range domain.Categories() {
		n := counts.Of(cat)
		share := 0
		if len(records) > 0 {
			share = int(math.Round(float64(n) / float64(len(records)) * 100))
		}
		out = append(out, CategoryShare{
			Category: cat,
			Name:     cat.LongLabel(),
			Count:    n,
			Share:    share,
		})
	}
	return out
}
