package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/worktime"
)

var segmentsCmd = LeafCommand{
	Use:   "segments",
	Short: "Show the worked sub-intervals of one task",
	StrFlags: []StringFlag{
		{Name: "plan", Usage: "path to the schedule payload JSON"},
		{Name: "calendar", Usage: "path to a calendar YAML file (default: configured calendar)"},
		{Name: "task", Usage: "task id to split"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSegments(cmd)
	},
}.Build()

func runSegments(cmd *cobra.Command) error {
	taskFlag, _ := cmd.Flags().GetString("task")
	if taskFlag == "" {
		return fmt.Errorf("--task is required")
	}

	payload, err := loadPayload(cmd)
	if err != nil {
		return err
	}

	cal, err := loadCalendar(cmd)
	if err != nil {
		return err
	}

	for _, t := range payload.Tasks {
		if t.ID != taskFlag {
			continue
		}

		w := cmd.OutOrStdout()
		worked := worktime.WorkedMinutes(t.Start.Time, t.End.Time, cal)
		segments := worktime.SplitSegments(t, cal)

		_, _ = fmt.Fprintf(w, "%s  %s -> %s  (worked: %s)\n",
			Primary(t.ID), t.Start.Format(stampLayout), t.End.Format(stampLayout),
			worktime.FormatMinutes(worked))
		if worked == 0 {
			_, _ = fmt.Fprintln(w, Warning("span falls entirely in non-working time"))
			return nil
		}
		for _, seg := range segments {
			mins := int(seg.End.Sub(seg.Start.Time).Minutes())
			_, _ = fmt.Fprintf(w, "  %-16s  %s -> %s  %s\n",
				seg.ID, seg.Start.Format(stampLayout), seg.End.Format(stampLayout),
				worktime.FormatMinutes(mins))
		}
		return nil
	}

	return fmt.Errorf("task %q not found in schedule", taskFlag)
}
