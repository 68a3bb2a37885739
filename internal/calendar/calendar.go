// Package calendar models the working calendar a production schedule is
// measured against: daily recurring shifts plus holiday and weekend
// exclusions.
package calendar

import "time"

// DayKeyLayout is the calendar-day key format used for holiday lookups.
const DayKeyLayout = "2006-01-02"

// Calendar combines daily working shifts with holiday exclusions.
// Saturdays and Sundays are always non-working regardless of the
// holiday list.
type Calendar struct {
	Shifts   []Shift
	Holidays map[string]bool // DayKeyLayout date string -> true
}

// Default returns the standard two-shift calendar (08:00-12:00 and
// 14:00-18:00) with no holidays.
func Default() Calendar {
	return Calendar{
		Shifts: []Shift{
			{From: TimeOfDay{Hour: 8}, To: TimeOfDay{Hour: 12}},
			{From: TimeOfDay{Hour: 14}, To: TimeOfDay{Hour: 18}},
		},
		Holidays: map[string]bool{},
	}
}

// Window is a shift anchored to a concrete calendar day.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsWorkingDay reports whether date falls on a working day.
func (c Calendar) IsWorkingDay(date time.Time) bool {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.Holidays[date.Format(DayKeyLayout)]
}

// WindowsFor anchors every shift to date's calendar day and returns the
// resulting absolute time windows, ordered by start time. Returns nil
// when date is not a working day.
func (c Calendar) WindowsFor(date time.Time) []Window {
	if !c.IsWorkingDay(date) {
		return nil
	}

	windows := make([]Window, len(c.Shifts))
	for i, s := range c.Shifts {
		windows[i] = Window{
			Start: anchor(date, s.From),
			End:   anchor(date, s.To),
		}
	}
	return windows
}

// DailyCapacityMinutes returns the total scheduled working minutes of
// one working day, i.e. the sum of all shift lengths.
func (c Calendar) DailyCapacityMinutes() int {
	total := 0
	for _, s := range c.Shifts {
		total += s.Minutes()
	}
	return total
}

// anchor places a TimeOfDay on date's calendar day in date's location.
func anchor(date time.Time, t TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// TruncateToDay strips the time-of-day component from t.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
