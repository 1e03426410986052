package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attempts to add place details to a detection detail.
// If geocoder is nil or geocoding fails, the detail is returned with
// GeoSource set accordingly (graceful degradation).
func EnrichWithGeocoding(ctx context.Context, detail DetectionDetail, geocoder Geocoder, logger *slog.Logger) DetectionDetail {
	if geocoder == nil {
		return detail
	}

	result, err := geocoder.ReverseGeocode(ctx, detail.Record.Latitude, detail.Record.Longitude)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"record_id", detail.Record.ID,
			"lat", detail.Record.Latitude,
			"lon", detail.Record.Longitude,
			"error", err,
		)
		detail.GeoSource = "failed"
		return detail
	}
	if result.FormattedAddress == "" {
		detail.GeoSource = "original"
		return detail
	}

	detail.FormattedAddress = result.FormattedAddress
	detail.PlaceName = result.PlaceName
	detail.Locality = result.Locality
	detail.GeoConfidence = result.Confidence
	detail.GeoSource = "reverse"
	return detail
}
