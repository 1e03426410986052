package domain

import "errors"

var (
	// ErrStorageUnavailable is returned when the backing store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedRecord marks a stored row that cannot be displayed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownCategory is returned when a category code or label is not in the lookup table.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("detection not found")
)
