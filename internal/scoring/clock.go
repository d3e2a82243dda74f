package scoring

import (
	"fmt"
	"math"
	"time"
)

// ParseClock converts an HH:MM string to a fractional hour of day.
func ParseClock(s string) (float64, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return float64(t.Hour()) + float64(t.Minute())/60.0, nil
}

// ClockHour extracts the fractional hour of day from a timestamp.
func ClockHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

// FormatClock renders a fractional hour as HH:MM, wrapping past midnight.
func FormatClock(hour float64) string {
	hour = math.Mod(hour, 24)
	if hour < 0 {
		hour += 24
	}
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h = (h + 1) % 24
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// HoursSinceWake maps a clock hour to elapsed wakefulness. The value is 0 at
// the wake hour and wraps modulo 24: hours before today's wake time are
// treated as continuing yesterday's wake cycle.
func HoursSinceWake(hour, wakeHour float64) float64 {
	d := math.Mod(hour-wakeHour, 24)
	if d < 0 {
		d += 24
	}
	return d
}
