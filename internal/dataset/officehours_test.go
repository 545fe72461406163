package dataset

import "testing"

func TestParseOfficeHours(t *testing.T) {
	raw := `Name: Ahmed Bataineh (Head of Department)
Academic School: School of Computing and Informatics
Department: Computer Science
Email: ahmed.bataineh@htu.edu.jo
Office number: B204
Office Hours
Time/Day:
Sunday: 10:00 - 12:00
Monday: 13:00 - 15:00
and by appointment
Wednesday: None`

	prof := ParseOfficeHours(raw)

	if prof.Name != "Ahmed Bataineh" {
		t.Errorf("Name = %q, want parenthetical suffix stripped", prof.Name)
	}
	if prof.School != "School of Computing and Informatics" {
		t.Errorf("School = %q", prof.School)
	}
	if prof.Department != "Computer Science" {
		t.Errorf("Department = %q", prof.Department)
	}
	if prof.Email != "ahmed.bataineh@htu.edu.jo" {
		t.Errorf("Email = %q", prof.Email)
	}
	if prof.Office != "B204" {
		t.Errorf("Office = %q", prof.Office)
	}

	if got := prof.OfficeHours["Sunday"]; got != "10:00 - 12:00" {
		t.Errorf("Sunday = %q", got)
	}
	if got := prof.OfficeHours["Monday"]; got != "13:00 - 15:00 and by appointment" {
		t.Errorf("Monday continuation = %q", got)
	}
	if got := prof.OfficeHours["Wednesday"]; got != "None" {
		t.Errorf("Wednesday = %q", got)
	}
}

func TestParseOfficeHoursAltOfficeLabel(t *testing.T) {
	prof := ParseOfficeHours("Name: Jane Doe\nOffice Number: C101")
	if prof.Office != "C101" {
		t.Errorf("Office = %q, want C101 via alternate label", prof.Office)
	}
}

func TestParseOfficeHoursEmpty(t *testing.T) {
	prof := ParseOfficeHours("")
	if prof.Name != "" || len(prof.OfficeHours) != 0 {
		t.Errorf("ParseOfficeHours(\"\") = %+v, want zero record", prof)
	}
}
