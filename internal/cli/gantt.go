package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/board"
)

var ganttCmd = LeafCommand{
	Use:   "gantt",
	Short: "List tasks reshaped for a grouping axis",
	StrFlags: []StringFlag{
		{Name: "plan", Usage: "path to the schedule payload JSON"},
		{Name: "by", Usage: "grouping axis: order, team or station", Default: "order"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGantt(cmd)
	},
}.Build()

func runGantt(cmd *cobra.Command) error {
	byFlag, _ := cmd.Flags().GetString("by")
	axis, err := board.ParseAxis(byFlag)
	if err != nil {
		return err
	}

	payload, err := loadPayload(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	items := board.New(payload).GanttItems(axis)
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks in schedule.")
		return nil
	}

	_, _ = fmt.Fprintf(w, "%-24s  %-10s  %-20s  %-16s  %-16s\n",
		Primary("GROUP"), Primary("TASK"), Primary("NAME"), Primary("START"), Primary("END"))
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "%-24s  %-10s  %-20s  %-16s  %-16s\n",
			item.Group, item.TaskID, item.Name,
			item.Start.Format(stampLayout), item.End.Format(stampLayout))
	}
	return nil
}
