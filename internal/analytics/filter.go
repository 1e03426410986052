package analytics

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// Filter narrows a record list. Zero values match everything.
type Filter struct {
	Category domain.Category
	Hazard   *bool
}

// IsZero reports whether the filter matches every record.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Hazard == nil
}

// Matches reports whether a record passes the filter.
func (f Filter) Matches(r domain.DisplayRecord) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Hazard != nil && r.HazardDetected != *f.Hazard {
		return false
	}
	return true
}

// ParseFilter builds a Filter from a category code and a status string
// ("hazard" or "clear"). Empty strings leave that dimension unfiltered.
func ParseFilter(category, status string) (Filter, error) {
	var f Filter
	if category != "" {
		c, err := domain.ParseCategory(strings.ToUpper(strings.TrimSpace(category)))
		if err != nil {
			return Filter{}, err
		}
		f.Category = c
	}

	switch strings.ToLower(strings.TrimSpace(status)) {
	case "":
	case "hazard":
		v := true
		f.Hazard = &v
	case "clear":
		v := false
		f.Hazard = &v
	default:
		return Filter{}, fmt.Errorf("unknown status %q: must be hazard or clear", status)
	}
	return f, nil
}

// Apply returns the records that match f, preserving order. The input slice
// is returned unchanged when the filter is zero.
func Apply(records []domain.DisplayRecord, f Filter) []domain.DisplayRecord {
	if f.IsZero() {
		return records
	}
	out := make([]domain.DisplayRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
