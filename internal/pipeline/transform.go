package pipeline

import (
	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// transform validates one stored record and converts it to its display form.
// Errors wrap domain.ErrMalformedRecord.
func transform(d domain.Detection) (domain.DisplayRecord, error) {
	if err := d.Validate(); err != nil {
		return domain.DisplayRecord{}, err
	}
	return domain.ToDisplayRecord(d), nil
}

// transformAll converts every well-formed record, preserving order. Rejected
// records are passed to skip.
func transformAll(rows []domain.Detection, skip func(domain.Detection, error)) []domain.DisplayRecord {
	out := make([]domain.DisplayRecord, 0, len(rows))
	for _, d := range rows {
		r, err := transform(d)
		if err != nil {
			skip(d, err)
			continue
		}
		out = append(out, r)
	}
	return out
}
