package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/calendar"
	"github.com/Meng-Best/task-planning-system-sub001/internal/config"
	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

// loadPayload reads the schedule snapshot named by the --plan flag.
func loadPayload(cmd *cobra.Command) (plan.Payload, error) {
	path, _ := cmd.Flags().GetString("plan")
	if path == "" {
		return plan.Payload{}, fmt.Errorf("--plan is required")
	}
	return plan.LoadFile(path)
}

// loadCalendar resolves the working calendar: the --calendar flag wins,
// then the configured default calendar file, then the built-in
// two-shift calendar.
func loadCalendar(cmd *cobra.Command) (calendar.Calendar, error) {
	path, _ := cmd.Flags().GetString("calendar")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return calendar.Calendar{}, err
		}
		cfg, err := config.Read(homeDir)
		if err != nil {
			return calendar.Calendar{}, err
		}
		path = cfg.CalendarPath
	}
	return calendar.LoadConfig(path)
}
