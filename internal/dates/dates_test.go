package dates

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2018-12-31", "2018-12-31"},
		{" 2018-12-31 ", "2018-12-31"},
		{"2018-12-30 + 1", "2018-12-31"},
		{"2018-12-30 - 1", "2018-12-29"},
		{"2018-12-30 - 10", "2018-12-20"},
		{"2018-12-30+1", "2018-12-31"},
		// Month and year rollover.
		{"2018-12-31 + 1", "2019-01-01"},
		{"2019-03-01 - 1", "2019-02-28"},
		{"2020-02-28 + 1", "2020-02-29"},
		// Anything that is not a leading ISO date passes through unchanged,
		// whitespace included.
		{"31/12/2018", "31/12/2018"},
		{"today", "today"},
		{"next month", "next month"},
		{" tomorrow ", " tomorrow "},
		{"", ""},
		{"2018-12-30 + ", "2018-12-30 + "},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// An out-of-range calendar date is not a parse error; arithmetic normalizes
// it instead.
func TestResolve_InvalidCalendarDate(t *testing.T) {
	if got := Resolve("2018-02-30"); got != "2018-02-30" {
		t.Errorf("bare invalid date = %q, want unchanged", got)
	}
	if got := Resolve("2018-02-30 + 0"); got != "2018-03-02" {
		t.Errorf("normalized = %q, want 2018-03-02", got)
	}
}
