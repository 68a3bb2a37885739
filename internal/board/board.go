// Package board answers analytical questions over one production
// schedule snapshot: aggregate statistics, alternate groupings for
// visualization, order trees, and calendar-adjusted workload summaries.
// Every method is a pure computation over the immutable payload; nothing
// is cached, so repeated calls always agree with each other.
package board

import (
	"errors"
	"time"

	"github.com/Meng-Best/task-planning-system-sub001/internal/calendar"
	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

// ErrNoData signals an empty task plan. Callers render an empty state
// instead of a broken chart.
var ErrNoData = errors.New("schedule contains no tasks")

// Board is a read-only view over one schedule snapshot.
type Board struct {
	payload plan.Payload
}

// New wraps a payload in a Board. The payload is never mutated.
func New(p plan.Payload) Board {
	return Board{payload: p}
}

// Statistic summarizes one schedule snapshot.
type Statistic struct {
	Orders   int
	Teams    int
	Stations int
	Tasks    int
	Start    time.Time
	End      time.Time
	Days     int // calendar-day difference between Start's and End's days
}

// Statistics computes distinct order/team/station counts, the task
// count, and the global planned date span. Returns ErrNoData for an
// empty task plan.
func (b Board) Statistics() (Statistic, error) {
	if len(b.payload.Tasks) == 0 {
		return Statistic{}, ErrNoData
	}

	orders := make(map[string]bool)
	teams := make(map[string]bool)
	stations := make(map[string]bool)

	start, end := b.span()
	for _, t := range b.payload.Tasks {
		orders[t.OrderCode] = true
		teams[t.TeamCode] = true
		stations[t.StationCode] = true
	}

	days := 0
	if !start.IsZero() && !end.IsZero() {
		days = int(calendar.TruncateToDay(end).Sub(calendar.TruncateToDay(start)).Hours() / 24)
	}

	return Statistic{
		Orders:   len(orders),
		Teams:    len(teams),
		Stations: len(stations),
		Tasks:    len(b.payload.Tasks),
		Start:    start,
		End:      end,
		Days:     days,
	}, nil
}

// span returns the min planned start and max planned end over all
// tasks, skipping zero-valued stamps.
func (b Board) span() (time.Time, time.Time) {
	var start, end time.Time
	for _, t := range b.payload.Tasks {
		if !t.Start.IsZero() && (start.IsZero() || t.Start.Before(start)) {
			start = t.Start.Time
		}
		if !t.End.IsZero() && (end.IsZero() || t.End.After(end)) {
			end = t.End.Time
		}
	}
	return start, end
}

// spanDays returns the number of calendar days the snapshot touches,
// first and last day inclusive. Zero when no task carries a valid span.
func (b Board) spanDays() int {
	start, end := b.span()
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return int(calendar.TruncateToDay(end).Sub(calendar.TruncateToDay(start)).Hours()/24) + 1
}
