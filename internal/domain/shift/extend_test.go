package shift

import (
	"context"
	"testing"
	"time"
)

func TestIsLastDayOfMonth(t *testing.T) {
	if !IsLastDayOfMonth(day(2025, time.January, 31)) {
		t.Fatal("expected January 31 to be month end")
	}
	if !IsLastDayOfMonth(day(2024, time.February, 29)) {
		t.Fatal("expected leap February 29 to be month end")
	}
	if IsLastDayOfMonth(day(2025, time.February, 28).AddDate(0, 0, -1)) {
		t.Fatal("expected February 27 not to be month end")
	}
	if IsLastDayOfMonth(day(2025, time.January, 30)) {
		t.Fatal("expected January 30 not to be month end")
	}
}

func TestExtendRecurringClonesOneMonthForward(t *testing.T) {
	store := newFakeStore()
	original, _ := store.Create(context.Background(), Shift{
		UserID: "user-1", Class: "Maths", Grade: "Year 9", Status: StatusLogged,
		Date: day(2025, time.January, 6), StartTime: "09:00", EndTime: "11:00", Recurring: true,
	})
	store.Create(context.Background(), Shift{
		UserID: "user-1", Class: "Science", Grade: "Year 8", Status: StatusLogged,
		Date: day(2025, time.January, 7), StartTime: "14:00", EndTime: "16:00",
	})

	result, err := ExtendRecurring(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 1 || result.Skipped != 0 {
		t.Fatalf("expected 1 created / 0 skipped, got %+v", result)
	}

	target := day(2025, time.February, 6)
	var clone Shift
	found := false
	for _, record := range store.shifts {
		if record.ID != original.ID && record.Recurring {
			clone = record
			found = true
		}
	}
	if !found {
		t.Fatal("expected a cloned recurring shift")
	}
	if !clone.Date.Equal(target) {
		t.Fatalf("expected clone dated %v, got %v", target, clone.Date)
	}
	if clone.Status != StatusUpcoming {
		t.Fatalf("expected clone status UPCOMING, got %s", clone.Status)
	}
	if clone.Class != "Maths" || clone.Grade != "Year 9" || clone.StartTime != "09:00" || clone.EndTime != "11:00" || clone.UserID != "user-1" {
		t.Fatalf("expected clone to share all non-date fields, got %+v", clone)
	}
}

func TestExtendRecurringSkipsExistingClones(t *testing.T) {
	store := newFakeStore()
	store.Create(context.Background(), Shift{
		UserID: "user-1", Class: "Maths", Grade: "Year 9", Status: StatusLogged,
		Date: day(2025, time.January, 6), StartTime: "09:00", EndTime: "11:00", Recurring: true,
	})

	if _, err := ExtendRecurring(context.Background(), store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The February clone already exists, so a rerun must not duplicate it.
	// The clone itself is recurring and seeds March, as the monthly cadence
	// intends.
	result, err := ExtendRecurring(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Skipped != 1 {
		t.Fatalf("expected the existing February clone to be skipped, got %+v", result)
	}

	febClones := 0
	for _, record := range store.shifts {
		if record.Date.Equal(day(2025, time.February, 6)) {
			febClones++
		}
	}
	if febClones != 1 {
		t.Fatalf("expected exactly one February clone, got %d", febClones)
	}
}
