package invoice

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"tutorbill/internal/domain/shift"
	"tutorbill/internal/domain/user"
)

func completeProfile() user.Profile {
	return user.Profile{
		ID:            "user-1",
		Name:          "Terry Tutor",
		Email:         "terry@example.com",
		Role:          user.RoleEmployee,
		WagePerHour:   40,
		ContactNumber: "0416500319",
		ManagerName:   "A. Manager",
		BSB:           "062443",
		AccountNumber: "12345678",
	}
}

func marchShift(dayOfMonth int, start, end string) shift.Shift {
	return shift.Shift{
		ID:        "shift-" + start,
		UserID:    "user-1",
		Class:     "Maths",
		Grade:     "Year 9",
		Status:    shift.StatusLogged,
		Date:      time.Date(2025, time.March, dayOfMonth, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
	}
}

func TestBuildTotalsScenario(t *testing.T) {
	// wagePerHour=40, two 2-hour shifts in March 2025.
	shifts := []shift.Shift{
		marchShift(3, "09:00", "11:00"),
		marchShift(10, "14:00", "16:00"),
	}
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	inv, err := Build(completeProfile(), shifts, 2025, time.March, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.TotalHours != 4 {
		t.Fatalf("expected totalHours 4, got %d", inv.TotalHours)
	}
	if inv.TotalPay != 160 {
		t.Fatalf("expected totalPay 160, got %v", inv.TotalPay)
	}
	if inv.Label != "March 2025" {
		t.Fatalf("expected label 'March 2025', got %q", inv.Label)
	}
}

func TestBuildFiltersAndSorts(t *testing.T) {
	shifts := []shift.Shift{
		marchShift(24, "09:00", "11:00"),
		{
			ID: "feb", UserID: "user-1", Class: "Maths", Grade: "Year 9",
			Date: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "11:00",
		},
		marchShift(3, "14:00", "16:00"),
		{
			ID: "next-year", UserID: "user-1", Class: "Maths", Grade: "Year 9",
			Date: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "11:00",
		},
	}
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	inv, err := Build(completeProfile(), shifts, 2025, time.March, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inv.Rows) != 2 {
		t.Fatalf("expected 2 rows for March 2025, got %d", len(inv.Rows))
	}
	if !inv.Rows[0].Date.Before(inv.Rows[1].Date) {
		t.Fatal("expected rows sorted ascending by date")
	}
	if inv.Rows[0].Day != "Monday" || inv.Rows[0].DateLabel != "03.03.25" {
		t.Fatalf("unexpected first row labels: %+v", inv.Rows[0])
	}
}

func TestBuildRowValues(t *testing.T) {
	shifts := []shift.Shift{marchShift(3, "09:30", "12:00")}
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	inv, err := Build(completeProfile(), shifts, 2025, time.March, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := inv.Rows[0]
	// 12 - 9 with minutes discarded.
	if row.Hours != 3 {
		t.Fatalf("expected 3 hours, got %d", row.Hours)
	}
	if row.Wage != 120 {
		t.Fatalf("expected wage 120, got %v", row.Wage)
	}
	if row.Status != shift.DisplayLogged {
		t.Fatalf("expected Logged display status, got %s", row.Status)
	}
}

func TestBuildAssociativity(t *testing.T) {
	shifts := []shift.Shift{
		marchShift(3, "09:00", "11:00"),
		marchShift(10, "13:00", "16:00"),
		marchShift(17, "08:00", "09:00"),
	}
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	profile := completeProfile()

	inv, err := Build(profile, shifts, 2025, time.March, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wageSum float64
	var hourSum int
	for _, row := range inv.Rows {
		wageSum += row.Wage
		hourSum += row.Hours
	}
	if inv.TotalPay != wageSum {
		t.Fatalf("total pay %v != sum of row wages %v", inv.TotalPay, wageSum)
	}
	if inv.TotalPay != float64(hourSum)*profile.WagePerHour {
		t.Fatalf("total pay %v != total hours x rate %v", inv.TotalPay, float64(hourSum)*profile.WagePerHour)
	}
}

func TestBuildIdempotent(t *testing.T) {
	shifts := []shift.Shift{
		marchShift(10, "09:00", "11:00"),
		marchShift(3, "14:00", "16:00"),
	}
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	first, err := Build(completeProfile(), shifts, 2025, time.March, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Build(completeProfile(), shifts, 2025, time.March, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for unchanged inputs")
	}
}

func TestBuildRequiresCompleteProfile(t *testing.T) {
	profile := completeProfile()
	profile.BSB = ""
	_, err := Build(profile, nil, 2025, time.March, time.Now())
	if !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete, got %v", err)
	}
}

func TestBuildEmptyMonth(t *testing.T) {
	inv, err := Build(completeProfile(), nil, 2025, time.March, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inv.Rows) != 0 || inv.TotalHours != 0 || inv.TotalPay != 0 {
		t.Fatalf("expected empty invoice, got %+v", inv)
	}
}

func TestRenderersAgreeOnFigures(t *testing.T) {
	shifts := []shift.Shift{
		marchShift(3, "09:00", "11:00"),
		marchShift(10, "14:00", "16:00"),
	}
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	inv, err := Build(completeProfile(), shifts, 2025, time.March, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var html strings.Builder
	if err := RenderHTML(&html, inv); err != nil {
		t.Fatalf("unexpected html error: %v", err)
	}
	page := html.String()
	for _, want := range []string{"Invoice for March 2025", "Maths - Year 9", "03.03.25", "10.03.25", "160.00", "Terry Tutor", "BSB: 062443"} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected html to contain %q", want)
		}
	}
	if strings.Index(page, "03.03.25") > strings.Index(page, "10.03.25") {
		t.Fatal("expected html rows in ascending date order")
	}

	pdf, err := RenderPDF(inv)
	if err != nil {
		t.Fatalf("unexpected pdf error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty pdf output")
	}
}
