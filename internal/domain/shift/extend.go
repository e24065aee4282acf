package shift

import (
	"context"
	"time"
)

type ExtendResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// IsLastDayOfMonth reports whether t falls on the final day of its month,
// the day the extension job is meant to run.
func IsLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

// ExtendRecurring clones every recurring shift one calendar month forward
// with a fresh UPCOMING status. A clone is skipped when a shift with the
// same owner, class, grade, clock times and target date already exists,
// which makes repeated runs idempotent. The existence check and insert are
// not a single atomic step; concurrent runs can race to insert duplicates.
func ExtendRecurring(ctx context.Context, store StoreAPI) (ExtendResult, error) {
	recurring, err := store.ListRecurring(ctx)
	if err != nil {
		return ExtendResult{}, err
	}

	var result ExtendResult
	for _, record := range recurring {
		target := record.Date.AddDate(0, 1, 0)
		exists, err := store.Exists(ctx, record.UserID, record.Class, record.Grade, record.StartTime, record.EndTime, target)
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped++
			continue
		}

		_, err = store.Create(ctx, Shift{
			UserID:    record.UserID,
			Class:     record.Class,
			Grade:     record.Grade,
			Status:    StatusUpcoming,
			Date:      target,
			StartTime: record.StartTime,
			EndTime:   record.EndTime,
			Recurring: true,
		})
		if err != nil {
			return result, err
		}
		result.Created++
	}
	return result, nil
}
