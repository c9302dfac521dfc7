package transit

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// FormatDuration renders a minute count as "1h 15m", or "40m" below an hour.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// AddToClock advances an "HH:MM" clock string by the given number of minutes,
// wrapping past midnight (23:50 + 30 = 00:20).
func AddToClock(clock string, minutes int) (string, error) {
	total, err := parseClock(clock)
	if err != nil {
		return "", err
	}
	total = (total + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// ClockDuration formats the span between two "HH:MM" clock strings, treating
// an arrival earlier than the departure as overnight. Returns "N/A" when
// either side is missing or unparseable, matching the live-feed fallbacks.
func ClockDuration(departure, arrival string) string {
	dep, err := parseClock(departure)
	if err != nil {
		return "N/A"
	}
	arr, err := parseClock(arrival)
	if err != nil {
		return "N/A"
	}

	span := arr - dep
	if span < 0 {
		span += minutesPerDay
	}
	return FormatDuration(span)
}

func parseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("transit: bad clock value %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("transit: bad clock value %q", clock)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("transit: bad clock value %q", clock)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("transit: clock value %q out of range", clock)
	}
	return hours*60 + mins, nil
}
