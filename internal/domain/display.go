package domain

import (
	"fmt"
	"math"
)

// DisplayRecord is the dashboard form of a Detection. JSON names match the
// payload the web client already consumes.
type DisplayRecord struct {
	ID             string     `json:"id"`
	ImageName      string     `json:"image_name"`
	HazardDetected bool       `json:"status"`
	Category       Category   `json:"type"`
	Confidence     Confidence `json:"confidence"`
	CapturedAt     string     `json:"timestamp"`
	Latitude       float64    `json:"lat"`
	Longitude      float64    `json:"lng"`
	Coordinates    string     `json:"coordinates"`
}

// ToDisplayRecord converts a stored record to its display form.
func ToDisplayRecord(d Detection) DisplayRecord {
	return DisplayRecord{
		ID:             d.ID,
		ImageName:      d.ImageName,
		HazardDetected: d.HazardDetected,
		Category:       d.Category,
		Confidence:     d.Confidence,
		CapturedAt:     d.CapturedAt,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		Coordinates:    FormatCoordinates(d.Latitude, d.Longitude),
	}
}

// MaxConfidence is the headline confidence of a record: the largest of its
// three per-category probabilities.
func MaxConfidence(d DisplayRecord) float64 {
	return d.Confidence.Max()
}

// FormatCoordinates renders a position as "22.6209° N, 88.4275° E".
// Zero latitude is north and zero longitude is east. Magnitudes round to four
// places with fmt's rule: exact binary ties go to the even digit (0.03125 gives
// "0.0312"), otherwise to the nearest value.
func FormatCoordinates(lat, lng float64) string {
	ns := "N"
	if lat < 0 {
		ns = "S"
	}
	ew := "E"
	if lng < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f° %s, %.4f° %s", math.Abs(lat), ns, math.Abs(lng), ew)
}

// Status labels a hazard flag the way the dashboard tables do.
func Status(hazard bool) string {
	if hazard {
		return "Hazard"
	}
	return "Clear"
}
