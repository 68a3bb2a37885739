package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/board"
	"github.com/Meng-Best/task-planning-system-sub001/internal/calendar"
	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
	"github.com/Meng-Best/task-planning-system-sub001/internal/stringutil"
	"github.com/Meng-Best/task-planning-system-sub001/internal/worktime"
)

// workloadRow is one station or team line in the workload report.
type workloadRow struct {
	Code      string
	Name      string
	TaskCount int
	Worked    int    // calendar-adjusted minutes
	Metric    string // rendered metric column: utilization or total hours
}

// workloadReport is the render-ready workload view shared by the static
// table, the interactive table and the PDF export.
type workloadReport struct {
	Title       string
	MetricLabel string
	Rows        []workloadRow
}

var workloadCmd = LeafCommand{
	Use:   "workload",
	Short: "Show calendar-adjusted workload per station or team",
	StrFlags: []StringFlag{
		{Name: "plan", Usage: "path to the schedule payload JSON"},
		{Name: "calendar", Usage: "path to a calendar YAML file (default: configured calendar)"},
		{Name: "axis", Usage: "workload axis: station or team", Default: "station"},
		{Name: "export", Usage: "export format (pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkload(cmd)
	},
}.Build()

func runWorkload(cmd *cobra.Command) error {
	axisFlag, _ := cmd.Flags().GetString("axis")
	exportFlag, _ := cmd.Flags().GetString("export")

	payload, err := loadPayload(cmd)
	if err != nil {
		return err
	}

	cal, err := loadCalendar(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	report, err := buildWorkloadReport(payload, cal, axisFlag)
	if err != nil {
		return err
	}
	if len(report.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks in schedule.")
		return nil
	}

	if exportFlag != "" {
		if exportFlag != "pdf" {
			return fmt.Errorf("unsupported export format %q (supported: pdf)", exportFlag)
		}
		outputPath := fmt.Sprintf("workload-%s-%s.pdf", stringutil.Slugify(axisFlag), payload.Fingerprint())
		if err := renderWorkloadPDF(report, outputPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Exported workload report to %s\n", outputPath)
		return nil
	}

	return runWorkloadTable(cmd, report)
}

func buildWorkloadReport(payload plan.Payload, cal calendar.Calendar, axisFlag string) (workloadReport, error) {
	b := board.New(payload)

	switch axisFlag {
	case "station":
		report := workloadReport{Title: "Workload by station", MetricLabel: "UTIL"}
		for _, s := range b.StationTimeline(cal) {
			report.Rows = append(report.Rows, workloadRow{
				Code:      s.Code,
				Name:      s.Name,
				TaskCount: len(s.Tasks),
				Worked:    s.WorkedMinutes,
				Metric:    fmt.Sprintf("%d%%", s.Utilization),
			})
		}
		return report, nil

	case "team":
		report := workloadReport{Title: "Workload by team", MetricLabel: "HOURS"}
		for _, s := range b.TeamWorkload(cal) {
			report.Rows = append(report.Rows, workloadRow{
				Code:      s.Code,
				Name:      s.Name,
				TaskCount: len(s.Tasks),
				Worked:    s.WorkedMinutes,
				Metric:    fmt.Sprintf("%dh", s.TotalHours),
			})
		}
		return report, nil
	}

	return workloadReport{}, fmt.Errorf("unknown axis %q (expected station or team)", axisFlag)
}

// printWorkloadTable renders the report as a static table.
func printWorkloadTable(w io.Writer, report workloadReport) error {
	_, _ = fmt.Fprintln(w, Primary(report.Title))
	_, _ = fmt.Fprintf(w, "%-10s  %-24s  %6s  %10s  %6s\n",
		"CODE", "NAME", "TASKS", "WORKED", report.MetricLabel)
	for _, row := range report.Rows {
		_, _ = fmt.Fprintf(w, "%-10s  %-24s  %6d  %10s  %6s\n",
			row.Code, row.Name, row.TaskCount, worktime.FormatMinutes(row.Worked), row.Metric)
	}
	return nil
}
