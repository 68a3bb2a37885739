package calendar

import (
	"fmt"
	"strings"
)

// Shift is one daily recurring working window, e.g. 08:00-12:00.
// Shifts within a calendar are assumed non-overlapping and ordered by
// start time; overlapping shifts are caller-guaranteed not to occur and
// are not validated here.
type Shift struct {
	From TimeOfDay
	To   TimeOfDay
}

// String returns the shift in "HH:MM-HH:MM" format.
func (s Shift) String() string {
	return s.From.String() + "-" + s.To.String()
}

// Minutes returns the length of the shift in minutes.
func (s Shift) Minutes() int {
	return s.To.MinuteOfDay() - s.From.MinuteOfDay()
}

// ParseShift parses a shift string of the form "<time>-<time>",
// e.g. "08:00-12:00" or "2pm-6pm". The end must be after the start.
func ParseShift(s string) (Shift, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Shift{}, fmt.Errorf("invalid shift %q (expected e.g. 08:00-12:00)", s)
	}

	from, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return Shift{}, fmt.Errorf("invalid shift start in %q: %w", s, err)
	}

	to, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return Shift{}, fmt.Errorf("invalid shift end in %q: %w", s, err)
	}

	if to.MinuteOfDay() <= from.MinuteOfDay() {
		return Shift{}, fmt.Errorf("shift %q must end after it starts", s)
	}

	return Shift{From: from, To: to}, nil
}
