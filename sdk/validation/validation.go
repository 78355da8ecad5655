// Package validation holds small parsing and pointer helpers shared by the
// core and bridge layers.
package validation

import "time"

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to s, or nil when s is empty.
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetStringOrEmpty returns the string value or an empty string if nil.
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
