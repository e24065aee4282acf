package shared

import (
	"errors"
	"time"
)

var errBadDate = errors.New("unrecognised date format")

// ParseDate accepts a calendar date either as YYYY-MM-DD or as a full
// RFC 3339 timestamp, returning the date truncated to midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errBadDate
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, errBadDate
}
