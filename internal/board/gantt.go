package board

import (
	"fmt"
	"time"

	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

// Axis selects the grouping dimension of a flat Gantt view.
type Axis string

const (
	AxisOrder   Axis = "order"
	AxisTeam    Axis = "team"
	AxisStation Axis = "station"
)

// ParseAxis validates a user-supplied axis name.
func ParseAxis(s string) (Axis, error) {
	switch Axis(s) {
	case AxisOrder, AxisTeam, AxisStation:
		return Axis(s), nil
	}
	return "", fmt.Errorf("unknown axis %q (expected order, team or station)", s)
}

// GanttItem is one task reshaped for a chosen grouping axis. Group
// carries the display name of the axis value; everything else is the
// task's own attributes, passed through for the rendering layer.
type GanttItem struct {
	Group       string
	TaskID      string
	TaskCode    string
	ProcessCode string
	Name        string
	OrderCode   string
	OrderName   string
	ProductCode string
	Start       time.Time
	End         time.Time
	TeamCode    string
	TeamName    string
	StationCode string
	StationName string
	MachineName string
}

// GanttItems maps every task 1:1 onto a GanttItem whose Group is the
// axis's display name. No filtering, no reordering.
func (b Board) GanttItems(axis Axis) []GanttItem {
	items := make([]GanttItem, 0, len(b.payload.Tasks))
	for _, t := range b.payload.Tasks {
		items = append(items, GanttItem{
			Group:       groupName(t, axis),
			TaskID:      t.ID,
			TaskCode:    t.Code,
			ProcessCode: t.ProcessCode,
			Name:        t.Name,
			OrderCode:   t.OrderCode,
			OrderName:   t.OrderName,
			ProductCode: t.ProductCode,
			Start:       t.Start.Time,
			End:         t.End.Time,
			TeamCode:    t.TeamCode,
			TeamName:    t.TeamName,
			StationCode: t.StationCode,
			StationName: t.StationName,
			MachineName: t.MachineName,
		})
	}
	return items
}

func groupName(t plan.Task, axis Axis) string {
	switch axis {
	case AxisTeam:
		return t.TeamName
	case AxisStation:
		return t.StationName
	default:
		return t.OrderName
	}
}
