package domain

// SensorID identifies the capture rig reported in detection metadata.
const SensorID = "LIDAR-X1"

// DetectionDetail is the payload for a single selected detection.
type DetectionDetail struct {
	Record        DisplayRecord  `json:"detection"`
	Metadata      DetailMetadata `json:"metadata"`
	Probabilities []Probability  `json:"probabilities"`

	// Geocoding enrichment fields.
	PlaceName        string  `json:"place_name,omitempty"`
	Locality         string  `json:"locality,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"
}

// DetailMetadata mirrors the capture metadata block of the detail panel.
type DetailMetadata struct {
	Timestamp string `json:"timestamp"`
	Coords    string `json:"coords"`
	SensorID  string `json:"sensor_id"`
}

// Probability is one row of the per-category probability breakdown.
type Probability struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	Percent    float64  `json:"percent"`
	Classified bool     `json:"classified"`
}

// NewDetectionDetail builds the detail payload for a display record.
func NewDetectionDetail(r DisplayRecord) DetectionDetail {
	probs := make([]Probability, 0, len(categoryLabels))
	for _, c := range Categories() {
		probs = append(probs, Probability{
			Category:   c,
			Label:      c.Label(),
			Percent:    r.Confidence.For(c) * 100,
			Classified: c == r.Category,
		})
	}

	return DetectionDetail{
		Record: r,
		Metadata: DetailMetadata{
			Timestamp: r.CapturedAt,
			Coords:    r.Coordinates,
			SensorID:  SensorID,
		},
		Probabilities: probs,
	}
}
