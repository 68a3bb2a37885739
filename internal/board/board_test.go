package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

func at(d, hour int) time.Time {
	return time.Date(2024, time.January, d, hour, 0, 0, 0, time.UTC)
}

// fixtureTask builds a task with the naming scheme used across the
// board tests: order ORD-n, team TM-n, station ST-n.
func fixtureTask(id, order, team, station string, start, end time.Time) plan.Task {
	return plan.Task{
		ID:          id,
		Code:        id + "-C",
		Name:        "op " + id,
		OrderCode:   order,
		OrderName:   "Order " + order,
		TeamCode:    team,
		TeamName:    "Team " + team,
		StationCode: station,
		StationName: "Station " + station,
		Start:       plan.At(start),
		End:         plan.At(end),
	}
}

func fixturePayload() plan.Payload {
	return plan.Payload{
		OrderPlans: []plan.OrderPlan{
			{Code: "ORD-1", Name: "Order ORD-1", Start: plan.At(at(8, 8)), End: plan.At(at(10, 18))},
			{Code: "ORD-2", Name: "Order ORD-2", Start: plan.At(at(8, 8)), End: plan.At(at(10, 18))},
		},
		Tasks: []plan.Task{
			fixtureTask("T-1", "ORD-1", "TM-1", "ST-2", at(8, 8), at(8, 12)),
			fixtureTask("T-2", "ORD-1", "TM-2", "ST-1", at(8, 14), at(8, 18)),
			fixtureTask("T-3", "ORD-2", "TM-1", "ST-1", at(9, 8), at(10, 12)),
		},
	}
}

func TestStatistics(t *testing.T) {
	b := New(fixturePayload())

	stat, err := b.Statistics()
	require.NoError(t, err)

	assert.Equal(t, 2, stat.Orders)
	assert.Equal(t, 2, stat.Teams)
	assert.Equal(t, 2, stat.Stations)
	assert.Equal(t, 3, stat.Tasks)
	assert.Equal(t, at(8, 8), stat.Start)
	assert.Equal(t, at(10, 12), stat.End)
	assert.Equal(t, 2, stat.Days)
}

func TestStatisticsNoData(t *testing.T) {
	_, err := New(plan.Payload{}).Statistics()
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGanttItemsEmptyPayload(t *testing.T) {
	b := New(plan.Payload{})

	for _, axis := range []Axis{AxisOrder, AxisTeam, AxisStation} {
		assert.Empty(t, b.GanttItems(axis))
	}
}

func TestGanttItemsGroupPerAxis(t *testing.T) {
	b := New(fixturePayload())

	byOrder := b.GanttItems(AxisOrder)
	require.Len(t, byOrder, 3)
	assert.Equal(t, "Order ORD-1", byOrder[0].Group)

	byTeam := b.GanttItems(AxisTeam)
	assert.Equal(t, "Team TM-1", byTeam[0].Group)

	byStation := b.GanttItems(AxisStation)
	assert.Equal(t, "Station ST-2", byStation[0].Group)

	// 1:1 mapping carries task attributes through untouched.
	assert.Equal(t, "T-1", byOrder[0].TaskID)
	assert.Equal(t, at(8, 8), byOrder[0].Start)
	assert.Equal(t, at(8, 12), byOrder[0].End)
}

func TestParseAxis(t *testing.T) {
	for _, valid := range []string{"order", "team", "station"} {
		axis, err := ParseAxis(valid)
		assert.NoError(t, err)
		assert.Equal(t, Axis(valid), axis)
	}

	_, err := ParseAxis("machine")
	assert.Error(t, err)
}

func TestGroupByFirstSeenOrder(t *testing.T) {
	tasks := fixturePayload().Tasks

	keys, groups := GroupBy(tasks, func(t plan.Task) string { return t.TeamCode })
	assert.Equal(t, []string{"TM-1", "TM-2"}, keys)
	assert.Len(t, groups["TM-1"], 2)
	assert.Len(t, groups["TM-2"], 1)
}

func TestSortByStartStable(t *testing.T) {
	a := fixtureTask("A", "ORD-1", "TM-1", "ST-1", at(9, 8), at(9, 12))
	b := fixtureTask("B", "ORD-1", "TM-1", "ST-1", at(8, 8), at(8, 12))
	c := fixtureTask("C", "ORD-1", "TM-1", "ST-1", at(9, 8), at(9, 12))

	sorted := SortByStart([]plan.Task{a, b, c})
	assert.Equal(t, []string{"B", "A", "C"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestIdempotence(t *testing.T) {
	b := New(fixturePayload())

	first, err1 := b.Statistics()
	second, err2 := b.Statistics()
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	assert.Equal(t, b.GanttItems(AxisTeam), b.GanttItems(AxisTeam))
	assert.Equal(t, b.OrderTree(), b.OrderTree())
	assert.Equal(t, b.UniqueStations(), b.UniqueStations())
}
