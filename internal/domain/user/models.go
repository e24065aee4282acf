package user

import "time"

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
)

var Roles = []string{RoleEmployee, RoleManager}

func ValidRole(role string) bool {
	for _, candidate := range Roles {
		if role == candidate {
			return true
		}
	}
	return false
}

type Profile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	WagePerHour   float64   `json:"wagePerHour"`
	ContactNumber string    `json:"contactNumber"`
	ManagerName   string    `json:"managerName"`
	BSB           string    `json:"bsb"`
	AccountNumber string    `json:"accountNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Complete reports whether the billing details needed for shift and invoice
// views are all present. Incomplete profiles are routed to the completion
// flow instead.
func (p Profile) Complete() bool {
	return p.WagePerHour > 0 &&
		p.ContactNumber != "" &&
		p.ManagerName != "" &&
		p.BSB != "" &&
		p.AccountNumber != ""
}

// ProfilePatch carries the one-time completion form fields; the same patch
// updates the details later on.
type ProfilePatch struct {
	Role          string  `json:"role"`
	WagePerHour   float64 `json:"wagePerHour"`
	ContactNumber string  `json:"contactNumber"`
	ManagerName   string  `json:"managerName"`
	BSB           string  `json:"bsb"`
	AccountNumber string  `json:"accountNumber"`
}
