package board

import (
	"sort"
	"time"

	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

// Filter restricts tasks along several axes at once. An empty code list
// or zero time places no constraint on its axis; supplied constraints
// combine with AND semantics.
type Filter struct {
	Orders   []string
	Stations []string
	Teams    []string
	From     time.Time
	To       time.Time
}

// FilterTasks returns the tasks matching every supplied constraint. A
// task matches the date range when its planned span overlaps it, not
// only when it is strictly contained.
func (b Board) FilterTasks(f Filter) []plan.Task {
	var matched []plan.Task
	for _, t := range b.payload.Tasks {
		if !matchCode(f.Orders, t.OrderCode) {
			continue
		}
		if !matchCode(f.Stations, t.StationCode) {
			continue
		}
		if !matchCode(f.Teams, t.TeamCode) {
			continue
		}
		if !f.From.IsZero() && !t.End.IsZero() && t.End.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !t.Start.IsZero() && t.Start.After(f.To) {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func matchCode(allowed []string, code string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == code {
			return true
		}
	}
	return false
}

// CodeName is a (code, display name) pair used to populate filter
// controls.
type CodeName struct {
	Code string
	Name string
}

// UniqueOrders returns the distinct orders referenced by tasks, in
// first-seen order.
func (b Board) UniqueOrders() []CodeName {
	return b.uniquePairs(func(t plan.Task) CodeName {
		return CodeName{Code: t.OrderCode, Name: t.OrderName}
	}, false)
}

// UniqueStations returns the distinct stations in code-ascending order.
func (b Board) UniqueStations() []CodeName {
	return b.uniquePairs(func(t plan.Task) CodeName {
		return CodeName{Code: t.StationCode, Name: t.StationName}
	}, true)
}

// UniqueTeams returns the distinct teams in code-ascending order.
func (b Board) UniqueTeams() []CodeName {
	return b.uniquePairs(func(t plan.Task) CodeName {
		return CodeName{Code: t.TeamCode, Name: t.TeamName}
	}, true)
}

func (b Board) uniquePairs(pairOf func(plan.Task) CodeName, sorted bool) []CodeName {
	seen := make(map[string]bool)
	var pairs []CodeName
	for _, t := range b.payload.Tasks {
		p := pairOf(t)
		if seen[p.Code] {
			continue
		}
		seen[p.Code] = true
		pairs = append(pairs, p)
	}
	if sorted {
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Code < pairs[j].Code })
	}
	return pairs
}
