package invoice

import (
	"errors"
	"sort"
	"time"

	"tutorbill/internal/domain/shift"
	"tutorbill/internal/domain/user"
)

var ErrProfileIncomplete = errors.New("profile incomplete")

type Row struct {
	ID        string    `json:"id"`
	Class     string    `json:"class"`
	Grade     string    `json:"grade"`
	Day       string    `json:"day"`
	Date      time.Time `json:"date"`
	DateLabel string    `json:"dateLabel"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Hours     int       `json:"hours"`
	Wage      float64   `json:"wage"`
	Status    string    `json:"status"`
}

type Invoice struct {
	Year       int          `json:"year"`
	Month      int          `json:"month"`
	Label      string       `json:"label"`
	IssuedOn   string       `json:"issuedOn"`
	User       user.Profile `json:"user"`
	Rows       []Row        `json:"rows"`
	TotalHours int          `json:"totalHours"`
	TotalPay   float64      `json:"totalPay"`
}

// Build computes the monthly invoice view for one user: shifts filtered to
// the target month, sorted ascending by date, with per-row hours, wage and
// display status, plus the month totals. It reads nothing and writes
// nothing, so repeated calls over unchanged inputs yield identical output.
func Build(profile user.Profile, shifts []shift.Shift, year int, month time.Month, now time.Time) (Invoice, error) {
	if !profile.Complete() {
		return Invoice{}, ErrProfileIncomplete
	}

	var filtered []shift.Shift
	for _, record := range shifts {
		if record.Date.Year() == year && record.Date.Month() == month {
			filtered = append(filtered, record)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	rows := make([]Row, 0, len(filtered))
	totalHours := 0
	for _, record := range filtered {
		hours := shift.Hours(record.StartTime, record.EndTime)
		totalHours += hours
		rows = append(rows, Row{
			ID:        record.ID,
			Class:     record.Class,
			Grade:     record.Grade,
			Day:       record.Date.Weekday().String(),
			Date:      record.Date,
			DateLabel: record.Date.Format("02.01.06"),
			StartTime: record.StartTime,
			EndTime:   record.EndTime,
			Hours:     hours,
			Wage:      float64(hours) * profile.WagePerHour,
			Status:    shift.DisplayStatus(record, now),
		})
	}

	return Invoice{
		Year:       year,
		Month:      int(month),
		Label:      PeriodLabel(year, month),
		IssuedOn:   now.Format("02/01/06"),
		User:       profile,
		Rows:       rows,
		TotalHours: totalHours,
		TotalPay:   float64(totalHours) * profile.WagePerHour,
	}, nil
}
