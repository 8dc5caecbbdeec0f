package parser

import (
	"fmt"
	"strings"
	"time"
)

// TimestampExtractor parses the date-time stamps that delimit entries.
type TimestampExtractor struct {
	layout string
}

// NewTimestampExtractor creates an extractor for the given Go time layout.
func NewTimestampExtractor(layout string) *TimestampExtractor {
	return &TimestampExtractor{layout: layout}
}

// Extract parses a raw stamp such as "12/01/23, 10:15 am - " into a
// calendar date-time. The trailing separator is stripped before parsing.
// Returns zero time and an error if the stamp cannot be parsed.
func (e *TimestampExtractor) Extract(stamp string) (time.Time, error) {
	trimmed := strings.TrimSpace(stamp)
	trimmed = strings.TrimSuffix(trimmed, "-")
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.Trim(trimmed, "[]")

	ts, err := time.Parse(e.layout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", trimmed, err)
	}

	return ts, nil
}
