package domain

import (
	"fmt"
	"strings"
)

// Category is the size classification of a detected pothole, stored as a
// single-letter code.
type Category string

const (
	CategorySmall  Category = "A"
	CategoryMedium Category = "B"
	CategoryLarge  Category = "C"
)

// categoryLabels is the only code-to-label table. Every view (list, table,
// chart, CLI) goes through it.
var categoryLabels = []struct {
	code  Category
	label string
}{
	{CategorySmall, "Small"},
	{CategoryMedium, "Medium"},
	{CategoryLarge, "Large"},
}

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryLabels))
	for i, c := range categoryLabels {
		out[i] = c.code
	}
	return out
}

// ParseCategory validates a single-letter category code.
func ParseCategory(code string) (Category, error) {
	for _, c := range categoryLabels {
		if string(c.code) == code {
			return c.code, nil
		}
	}
	return "", fmt.Errorf("%w: code %q", ErrUnknownCategory, code)
}

// CategoryFromLabel maps a human label ("Small", "medium", ...) back to its code.
func CategoryFromLabel(label string) (Category, error) {
	for _, c := range categoryLabels {
		if strings.EqualFold(c.label, strings.TrimSpace(label)) {
			return c.code, nil
		}
	}
	return "", fmt.Errorf("%w: label %q", ErrUnknownCategory, label)
}

// Valid reports whether c is one of the known codes.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// Label returns the human label, or "Unknown" for codes outside the table.
func (c Category) Label() string {
	for _, e := range categoryLabels {
		if e.code == c {
			return e.label
		}
	}
	return "Unknown"
}

// LongLabel is the legend form used by the distribution chart, e.g. "Small (A)".
func (c Category) LongLabel() string {
	return fmt.Sprintf("%s (%s)", c.Label(), string(c))
}

func (c Category) String() string { return string(c) }
