package booking

import (
	"fmt"
	"time"
)

// Times of day are minutes from midnight (e.g., 540 for 9:00 AM), the same
// representation the slot grid and availability windows use everywhere.

// ParseTimeOfDay parses a "HH:00" string into minutes from midnight. Only
// top-of-the-hour values are valid; any other minute value, a non-numeric
// input or an out-of-range hour is rejected.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, NewInvalidFormatError(fmt.Sprintf("Invalid time format: %q, expected HH:00", s))
	}
	if t.Minute() != 0 {
		return 0, NewInvalidFormatError(fmt.Sprintf("Invalid time format: %q, minutes must be 00", s))
	}
	return t.Hour() * 60, nil
}

// FormatTimeOfDay renders minutes from midnight as a zero-padded "HH:MM"
// string, the inverse of ParseTimeOfDay for slot-aligned values.
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// HourlySlots returns every hour boundary h with h >= start and
// h + one hour <= end, in chronological order. A window shorter than one
// hour yields no slots. The sequence is small (at most 24 entries) and is
// recomputed on demand rather than cached.
func HourlySlots(start, end int) []int {
	var slots []int
	first := ((start + 59) / 60) * 60
	for t := first; t+60 <= end; t += 60 {
		slots = append(slots, t)
	}
	return slots
}
