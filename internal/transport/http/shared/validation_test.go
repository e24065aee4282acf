package shared

import (
	"testing"
	"time"
)

func TestValidatorClock(t *testing.T) {
	testCases := []struct {
		value string
		ok    bool
	}{
		{"09:00", true},
		{"9:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"12:60", false},
		{"12", false},
		{"12:5", false},
		{"", false},
		{"ab:cd", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.value, func(t *testing.T) {
			v := NewValidator()
			v.Clock("startTime", tc.value)
			if got := !v.HasIssues(); got != tc.ok {
				t.Errorf("Clock(%q): valid = %v, want %v", tc.value, got, tc.ok)
			}
		})
	}
}

func TestValidatorDigits(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		min   int
		max   int
		ok    bool
	}{
		{"exact bsb", "123456", 6, 6, true},
		{"bsb too short", "12345", 6, 6, false},
		{"bsb with letter", "12345a", 6, 6, false},
		{"account lower bound", "123456", 6, 9, true},
		{"account upper bound", "123456789", 6, 9, true},
		{"account too long", "1234567890", 6, 9, false},
		{"contact exact", "0412345678", 10, 10, true},
		{"contact with space", "0412 45678", 10, 10, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator()
			v.Digits("field", tc.value, tc.min, tc.max)
			if got := !v.HasIssues(); got != tc.ok {
				t.Errorf("Digits(%q, %d, %d): valid = %v, want %v", tc.value, tc.min, tc.max, got, tc.ok)
			}
		})
	}
}

func TestValidatorCollectsAndSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("grade", "", "grade is required")
	v.Required("class", "  ", "class is required")
	v.Positive("wagePerHour", 0, "wage must be positive")

	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
	if issues[0].Field != "class" || issues[1].Field != "grade" || issues[2].Field != "wagePerHour" {
		t.Errorf("issues not sorted by field: %+v", issues)
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	got, ok := v.Date("date", "2025-03-03")
	if !ok || v.HasIssues() {
		t.Fatalf("expected valid date, issues: %+v", v.Issues())
	}
	want := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed date = %v, want %v", got, want)
	}

	v = NewValidator()
	if _, ok := v.Date("date", "03/03/2025"); ok || !v.HasIssues() {
		t.Error("expected issue for slash-formatted date")
	}
}

func TestParseDateRFC3339(t *testing.T) {
	got, err := ParseDate("2025-01-06T13:45:00+11:00")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestValidatorMaxLen(t *testing.T) {
	v := NewValidator()
	v.MaxLen("class", "Mathematics", 255)
	if v.HasIssues() {
		t.Errorf("unexpected issues: %+v", v.Issues())
	}

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	v = NewValidator()
	v.MaxLen("class", string(long), 255)
	if !v.HasIssues() {
		t.Error("expected issue for over-long value")
	}
}
