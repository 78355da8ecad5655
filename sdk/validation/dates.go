package validation

import (
	"fmt"
	"strings"
	"time"
)

// dateFormats are tried in order. Layouts without a zone are read as UTC.
var dateFormats = []string{
	time.RFC3339Nano,      // 2006-01-02T15:04:05.999999999Z07:00
	"2006-01-02T15:04:05", // ISO 8601 without zone
	"2006-01-02T15:04",    // ISO 8601 minutes
	time.DateTime,         // 2006-01-02 15:04:05
	time.DateOnly,         // 2006-01-02
	"2006/01/02",          // YYYY/MM/DD
	"01/02/2006",          // MM/DD/YYYY
	"01-02-2006",          // MM-DD-YYYY
	"02.01.2006",          // DD.MM.YYYY
}

// ParseFlexibleDate tries to parse a date string using multiple common formats.
// The result is always in UTC.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, fmt.Errorf("unable to parse date: empty value")
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// IsDate reports whether ParseFlexibleDate accepts s.
func IsDate(s string) bool {
	_, err := ParseFlexibleDate(s)
	return err == nil
}

// FormatTime renders t as RFC3339 in UTC. Fractional seconds are kept
// only when present.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
