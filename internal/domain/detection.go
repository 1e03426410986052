package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// CapturedAtLayout is the stored timestamp format. It sorts lexicographically.
const CapturedAtLayout = "2006-01-02 15:04:05"

// Confidence holds the classifier's independent per-category probabilities.
type Confidence struct {
	A float64 `json:"A"`
	B float64 `json:"B"`
	C float64 `json:"C"`
}

// Max returns the highest of the three probabilities.
func (c Confidence) Max() float64 {
	return math.Max(c.A, math.Max(c.B, c.C))
}

// For returns the probability recorded for a category, or 0 for an unknown code.
func (c Confidence) For(cat Category) float64 {
	switch cat {
	case CategorySmall:
		return c.A
	case CategoryMedium:
		return c.B
	case CategoryLarge:
		return c.C
	default:
		return 0
	}
}

// Detection is a persisted detection record.
type Detection struct {
	ID             string
	ImageName      string
	HazardDetected bool
	StatusInvalid  bool // stored hazard flag was NULL or not a boolean
	Category       Category
	Confidence     Confidence
	CapturedAt     string // "YYYY-MM-DD HH:MM:SS"
	Latitude       float64
	Longitude      float64
}

// Validate reports whether the record can be displayed. The returned error
// wraps ErrMalformedRecord and names the first offending field.
func (d Detection) Validate() error {
	switch {
	case d.ID == "":
		return malformed(d.ID, "missing id")
	case d.ImageName == "":
		return malformed(d.ID, "missing image name")
	case d.StatusInvalid:
		return malformed(d.ID, "missing or unreadable status")
	case d.CapturedAt == "":
		return malformed(d.ID, "missing capture time")
	case !d.Category.Valid():
		return malformed(d.ID, fmt.Sprintf("category %q outside A/B/C", string(d.Category)))
	}

	if _, err := time.Parse(CapturedAtLayout, d.CapturedAt); err != nil {
		return malformed(d.ID, fmt.Sprintf("capture time %q", d.CapturedAt))
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"confidence A", d.Confidence.A},
		{"confidence B", d.Confidence.B},
		{"confidence C", d.Confidence.C},
		{"latitude", d.Latitude},
		{"longitude", d.Longitude},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return malformed(d.ID, "missing or non-finite "+f.name)
		}
	}
	return nil
}

func malformed(id, reason string) error {
	if id == "" {
		return fmt.Errorf("%w: %s", ErrMalformedRecord, reason)
	}
	return fmt.Errorf("%w: %s: %s", ErrMalformedRecord, id, reason)
}

// TimeOfDay returns the HH:MM:SS portion of a capture timestamp. Input without
// a date part is returned unchanged.
func TimeOfDay(capturedAt string) string {
	if _, after, ok := strings.Cut(capturedAt, " "); ok {
		return after
	}
	return capturedAt
}
