package transit

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{75, "1h 15m"},
		{40, "40m"},
		{0, "0m"},
		{60, "1h 0m"},
		{134, "2h 14m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestAddToClock(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		want    string
	}{
		{"23:50", 30, "00:20"},
		{"10:00", 75, "11:15"},
		{"00:00", 0, "00:00"},
		{"12:45", 1440, "12:45"},
	}
	for _, tc := range cases {
		got, err := AddToClock(tc.clock, tc.minutes)
		if err != nil {
			t.Fatalf("AddToClock(%q, %d) returned error: %v", tc.clock, tc.minutes, err)
		}
		if got != tc.want {
			t.Errorf("AddToClock(%q, %d) = %q, want %q", tc.clock, tc.minutes, got, tc.want)
		}
	}
}

func TestAddToClockRejectsBadInput(t *testing.T) {
	for _, clock := range []string{"", "12", "25:00", "12:61", "ab:cd"} {
		if _, err := AddToClock(clock, 10); err == nil {
			t.Errorf("expected error for clock %q", clock)
		}
	}
}

func TestClockDuration(t *testing.T) {
	cases := []struct {
		departure string
		arrival   string
		want      string
	}{
		{"10:00", "11:15", "1h 15m"},
		{"23:50", "00:20", "30m"}, // overnight
		{"09:00", "09:00", "0m"},
		{"10:00", "N/A", "N/A"},
		{"", "11:00", "N/A"},
	}
	for _, tc := range cases {
		if got := ClockDuration(tc.departure, tc.arrival); got != tc.want {
			t.Errorf("ClockDuration(%q, %q) = %q, want %q", tc.departure, tc.arrival, got, tc.want)
		}
	}
}
