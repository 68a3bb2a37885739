package board

import (
	"math"

	"github.com/Meng-Best/task-planning-system-sub001/internal/calendar"
	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
	"github.com/Meng-Best/task-planning-system-sub001/internal/worktime"
)

// StationSummary describes one station's timeline and utilization.
type StationSummary struct {
	Code          string
	Name          string
	Tasks         []plan.Task // sorted by planned start
	WorkedMinutes int
	Utilization   int // percent of available capacity, clamped to [0, 100]
}

// TeamSummary describes one team's total calendar-adjusted workload.
type TeamSummary struct {
	Code          string
	Name          string
	Tasks         []plan.Task // sorted by planned start
	WorkedMinutes int
	TotalHours    int // rounded, uncapped
}

// StationTimeline groups tasks by station and reports each station's
// worked minutes and utilization against the calendar. Utilization is
// worked hours over available hours for the global span, where available
// hours is span days times the calendar's daily capacity.
func (b Board) StationTimeline(cal calendar.Calendar) []StationSummary {
	codes, groups := GroupBy(b.payload.Tasks, func(t plan.Task) string { return t.StationCode })

	spanDays := b.spanDays()
	capacity := cal.DailyCapacityMinutes()

	summaries := make([]StationSummary, 0, len(codes))
	for _, code := range codes {
		tasks := SortByStart(groups[code])
		worked := workedMinutes(tasks, cal)

		util := 0
		if spanDays > 0 && capacity > 0 {
			util = int(math.Round(100 * float64(worked) / float64(spanDays*capacity)))
			if util < 0 {
				util = 0
			}
			if util > 100 {
				util = 100
			}
		}

		summaries = append(summaries, StationSummary{
			Code:          code,
			Name:          tasks[0].StationName,
			Tasks:         tasks,
			WorkedMinutes: worked,
			Utilization:   util,
		})
	}
	return summaries
}

// TeamWorkload groups tasks by team and reports each team's total
// calendar-adjusted worked hours, rounded and uncapped.
func (b Board) TeamWorkload(cal calendar.Calendar) []TeamSummary {
	codes, groups := GroupBy(b.payload.Tasks, func(t plan.Task) string { return t.TeamCode })

	summaries := make([]TeamSummary, 0, len(codes))
	for _, code := range codes {
		tasks := SortByStart(groups[code])
		worked := workedMinutes(tasks, cal)

		summaries = append(summaries, TeamSummary{
			Code:          code,
			Name:          tasks[0].TeamName,
			Tasks:         tasks,
			WorkedMinutes: worked,
			TotalHours:    int(math.Round(float64(worked) / 60)),
		})
	}
	return summaries
}

func workedMinutes(tasks []plan.Task, cal calendar.Calendar) int {
	total := 0
	for _, t := range tasks {
		total += worktime.WorkedMinutes(t.Start.Time, t.End.Time, cal)
	}
	return total
}
