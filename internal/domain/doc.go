// Package domain models road-hazard detection records produced by the
// pothole classifier and the display form served to the dashboard.
//
// # Source Data
//
// Each record describes one captured frame: the source image filename, whether
// the frame was flagged as an actionable hazard, the predicted size category and
// the classifier's per-category confidence, the capture time and the GPS fix.
//
// # Category Codes
//
// The classifier emits single-letter codes. They are translated to labels only
// through the table in category.go:
//
//	A  Small
//	B  Medium
//	C  Large
//
// # Confidence
//
// Confidence holds one independent probability per category, each in [0,1].
// The three values are not normalized and need not sum to 1. The headline
// confidence of a record is the maximum of the three (see [MaxConfidence]).
//
// # Timestamps
//
// Capture times are stored as "YYYY-MM-DD HH:MM:SS" strings in local camera
// time. The format sorts lexicographically, which the store relies on for its
// newest-first ordering, and the analytics time series keys on the HH:MM:SS
// portion after the space.
//
// # Coordinates
//
// Display coordinates render the absolute value of each axis with four decimal
// places followed by a hemisphere letter, e.g. "22.6209° N, 88.4275° E".
// Zero latitude is north and zero longitude is east.
package domain
