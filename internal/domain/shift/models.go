package shift

import "time"

const (
	StatusUpcoming  = "UPCOMING"
	StatusPending   = "PENDING"
	StatusLogged    = "LOGGED"
	StatusRequested = "REQUESTED"
	StatusPaid      = "PAID"
)

// Statuses lists every persistable shift status.
var Statuses = []string{StatusUpcoming, StatusPending, StatusLogged, StatusRequested, StatusPaid}

func ValidStatus(status string) bool {
	for _, candidate := range Statuses {
		if status == candidate {
			return true
		}
	}
	return false
}

type Shift struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Class     string    `json:"class"`
	Grade     string    `json:"grade"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput is a validated shift creation request. Date carries day
// precision; StartTime and EndTime are 24-hour HH:MM clocks.
type CreateInput struct {
	Class     string
	Grade     string
	Status    string
	Date      time.Time
	StartTime string
	EndTime   string
	Recurring bool
}
