// Package worktime re-expresses continuous planned spans as the time
// actually worked once non-working windows are excluded. Tasks routinely
// span weekends and partial days, so duration math has to intersect at
// shift-window granularity rather than whole days.
package worktime

import (
	"fmt"
	"time"

	"github.com/Meng-Best/task-planning-system-sub001/internal/calendar"
	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

// WorkedMinutes computes how many minutes of [start, end) fall inside
// the calendar's working windows. The walk advances one calendar day at
// a time, so cost is linear in the number of days touched. Inverted or
// zero-valued inputs yield 0.
func WorkedMinutes(start, end time.Time, cal calendar.Calendar) int {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0
	}

	total := 0
	lastDay := calendar.TruncateToDay(end)
	for day := calendar.TruncateToDay(start); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		for _, w := range cal.WindowsFor(day) {
			total += overlapMinutes(start, end, w)
		}
	}
	return total
}

// overlapMinutes returns the length of the intersection of [from, to)
// with the window, in minutes. Empty or inverted intersections
// contribute 0.
func overlapMinutes(from, to time.Time, w calendar.Window) int {
	s := from
	if w.Start.After(s) {
		s = w.Start
	}
	e := to
	if w.End.Before(e) {
		e = w.End
	}
	if !e.After(s) {
		return 0
	}
	return int(e.Sub(s).Minutes())
}

// SplitSegments splits a task's planned span into the sub-intervals that
// fall inside working windows. Each segment is a copy of the task with
// the span replaced by the intersection bounds and the ID replaced by
// "<id>_seg_<n>", 0-based in chronological order. When the span has
// zero or negative length, or intersects no working window at all, the
// original task is returned unsplit as the sole element.
func SplitSegments(t plan.Task, cal calendar.Calendar) []plan.Task {
	start, end := t.Start.Time, t.End.Time
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return []plan.Task{t}
	}

	var segments []plan.Task
	lastDay := calendar.TruncateToDay(end)
	for day := calendar.TruncateToDay(start); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		for _, w := range cal.WindowsFor(day) {
			s := start
			if w.Start.After(s) {
				s = w.Start
			}
			e := end
			if w.End.Before(e) {
				e = w.End
			}
			if !e.After(s) {
				continue
			}

			seg := t
			seg.ID = fmt.Sprintf("%s_seg_%d", t.ID, len(segments))
			seg.Start = plan.At(s)
			seg.End = plan.At(e)
			segments = append(segments, seg)
		}
	}

	if len(segments) == 0 {
		return []plan.Task{t}
	}
	return segments
}
