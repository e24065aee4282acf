package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParsePeriod parses an invoice period identifier of the form "YYYY-M" or
// "YYYY-MM" into a year and 1-indexed month. It rejects malformed input
// before any data access happens.
func ParsePeriod(raw string) (int, time.Month, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid period %q: expected YYYY-MM", raw)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("invalid period %q: bad year", raw)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid period %q: month must be 1-12", raw)
	}

	return year, time.Month(month), nil
}

// PeriodLabel formats a period as "January 2006".
func PeriodLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
