package shift

import (
	"strconv"
	"strings"
	"time"
)

// Display statuses shown on invoice rows, derived from the clock rather
// than the persisted status column.
const (
	DisplayLogged   = "Logged"
	DisplayPending  = "Pending"
	DisplayUpcoming = "Upcoming"
)

func parseClock(clock string) (hour, minute int) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

// HourOf returns the hour component of an HH:MM clock string.
func HourOf(clock string) int {
	hour, _ := parseClock(clock)
	return hour
}

// Hours is the whole-hour span between the two clocks. Minutes are
// discarded, so a 09:30-11:00 shift counts 2 hours.
func Hours(startTime, endTime string) int {
	return HourOf(endTime) - HourOf(startTime)
}

func (s Shift) StartInstant() time.Time {
	hour, minute := parseClock(s.StartTime)
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), hour, minute, 0, 0, s.Date.Location())
}

func (s Shift) EndInstant() time.Time {
	hour, minute := parseClock(s.EndTime)
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), hour, minute, 0, 0, s.Date.Location())
}

// ShouldPromote reports whether an UPCOMING shift ended strictly before now
// and is due for promotion to PENDING.
func (s Shift) ShouldPromote(now time.Time) bool {
	return s.Status == StatusUpcoming && s.EndInstant().Before(now)
}

// DisplayStatus classifies a shift against the current moment: ended shifts
// are Logged, in-progress shifts Pending, future shifts Upcoming.
func DisplayStatus(s Shift, now time.Time) string {
	start := s.StartInstant()
	end := s.EndInstant()
	if end.Before(now) {
		return DisplayLogged
	}
	if !start.After(now) {
		return DisplayPending
	}
	return DisplayUpcoming
}
