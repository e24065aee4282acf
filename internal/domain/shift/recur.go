package shift

import "time"

// LastDayOfMonth returns midnight on the final day of t's month, in t's
// location.
func LastDayOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// ExpandDates returns start followed by each weekly repeat that falls
// strictly before the last day of start's month. A first repeat landing on
// or after the last day yields just the start date. The same sequence
// defines the sibling set for recurring deletion.
func ExpandDates(start time.Time) []time.Time {
	last := LastDayOfMonth(start)
	dates := []time.Time{start}
	for next := start.AddDate(0, 0, 7); next.Before(last); next = next.AddDate(0, 0, 7) {
		dates = append(dates, next)
	}
	return dates
}

// Expand materializes the shift records for a creation request. Recurring
// requests repeat weekly through month end; every record shares class,
// grade, status, clock times and owner, differing only by date.
func Expand(userID string, input CreateInput) []Shift {
	dates := []time.Time{input.Date}
	if input.Recurring {
		dates = ExpandDates(input.Date)
	}

	shifts := make([]Shift, 0, len(dates))
	for _, date := range dates {
		shifts = append(shifts, Shift{
			UserID:    userID,
			Class:     input.Class,
			Grade:     input.Grade,
			Status:    input.Status,
			Date:      date,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			Recurring: input.Recurring,
		})
	}
	return shifts
}
