package calendar

import (
	"time"

	"github.com/teambition/rrule-go"
)

// WorkingDays expands the calendar into the concrete working days
// between from and to (inclusive), sorted ascending. The weekday
// recurrence is evaluated with an RRULE and holidays are dropped from
// the occurrences afterwards.
func WorkingDays(c Calendar, from, to time.Time) ([]time.Time, error) {
	start := TruncateToDay(from)
	end := TruncateToDay(to)
	if end.Before(start) {
		return nil, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		Dtstart:   start,
	})
	if err != nil {
		return nil, err
	}

	var days []time.Time
	for _, d := range r.Between(start, end, true) {
		if !c.Holidays[d.Format(DayKeyLayout)] {
			days = append(days, d)
		}
	}
	return days, nil
}
