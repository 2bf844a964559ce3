package schedule

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want Minutes
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "9", "9:0:0:0", "ab:cd", "24:00", "12:60", "-1:00"} {
		if _, err := ParseClock(in); err == nil {
			t.Fatalf("ParseClock(%q): expected error", in)
		}
	}
}

func TestParseClockSeconds(t *testing.T) {
	got, err := ParseClockSeconds("09:30:00")
	if err != nil {
		t.Fatalf("ParseClockSeconds: %v", err)
	}
	if got != 570 {
		t.Fatalf("ParseClockSeconds = %d, want 570", got)
	}
}

func TestDisplay12(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:00", "9:00 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		m, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tc.in, err)
		}
		if got := m.Display12(); got != tc.want {
			t.Fatalf("Display12(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDisplay12_RoundTripsAllMinutes(t *testing.T) {
	for m := Minutes(0); m < 1440; m++ {
		got, err := ParseDisplay12(m.Display12())
		if err != nil {
			t.Fatalf("ParseDisplay12(%q): %v", m.Display12(), err)
		}
		if got != m {
			t.Fatalf("round trip %d → %q → %d", m, m.Display12(), got)
		}
	}
}

func TestParseDisplay12_Noon_Midnight(t *testing.T) {
	if m, _ := ParseDisplay12("12:00 AM"); m != 0 {
		t.Fatalf("12 AM = %d, want 0", m)
	}
	if m, _ := ParseDisplay12("12:00 PM"); m != 720 {
		t.Fatalf("12 PM = %d, want 720", m)
	}
}

func TestParseDisplay12_Malformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "9:00 XX", "13:00 PM", "0:30 AM", "9 AM"} {
		if _, err := ParseDisplay12(in); err == nil {
			t.Fatalf("ParseDisplay12(%q): expected error", in)
		}
	}
}

func TestClockSeconds(t *testing.T) {
	m, _ := ParseClock("08:05")
	if got := m.ClockSeconds(); got != "08:05:00" {
		t.Fatalf("ClockSeconds = %q", got)
	}
}
