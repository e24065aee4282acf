package user

import "testing"

func TestProfileComplete(t *testing.T) {
	complete := Profile{
		WagePerHour:   40,
		ContactNumber: "0416500319",
		ManagerName:   "A. Manager",
		BSB:           "062443",
		AccountNumber: "12345678",
	}

	tests := []struct {
		name   string
		mutate func(*Profile)
		want   bool
	}{
		{"all present", func(p *Profile) {}, true},
		{"zero wage", func(p *Profile) { p.WagePerHour = 0 }, false},
		{"missing contact", func(p *Profile) { p.ContactNumber = "" }, false},
		{"missing manager", func(p *Profile) { p.ManagerName = "" }, false},
		{"missing bsb", func(p *Profile) { p.BSB = "" }, false},
		{"missing account", func(p *Profile) { p.AccountNumber = "" }, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			profile := complete
			tc.mutate(&profile)
			if got := profile.Complete(); got != tc.want {
				t.Fatalf("expected Complete() == %v", tc.want)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleEmployee) || !ValidRole(RoleManager) {
		t.Fatal("expected named roles to be valid")
	}
	if ValidRole("ADMIN") || ValidRole("") {
		t.Fatal("expected unknown roles to be invalid")
	}
}
