package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/calendar"
	"github.com/Meng-Best/task-planning-system-sub001/internal/config"
	"github.com/Meng-Best/task-planning-system-sub001/internal/worktime"
)

var calendarCmd = GroupCommand{
	Use:         "calendar",
	Short:       "Inspect or change the working calendar",
	Subcommands: []*cobra.Command{calendarShowCmd, calendarSetCmd},
}.Build()

var calendarShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the working calendar and upcoming working days",
	StrFlags: []StringFlag{
		{Name: "calendar", Usage: "path to a calendar YAML file (default: configured calendar)"},
		{Name: "days", Usage: "number of days ahead to list", Default: "14"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalendarShow(cmd, time.Now)
	},
}.Build()

func runCalendarShow(cmd *cobra.Command, nowFn func() time.Time) error {
	cal, err := loadCalendar(cmd)
	if err != nil {
		return err
	}

	daysFlag, _ := cmd.Flags().GetString("days")
	var ahead int
	if _, err := fmt.Sscanf(daysFlag, "%d", &ahead); err != nil || ahead < 1 {
		return fmt.Errorf("invalid --days value %q (expected a positive number)", daysFlag)
	}

	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(w, Primary("Shifts"))
	for _, s := range cal.Shifts {
		_, _ = fmt.Fprintf(w, "  %s (%s)\n", s.String(), worktime.FormatMinutes(s.Minutes()))
	}

	if len(cal.Holidays) > 0 {
		_, _ = fmt.Fprintln(w, Primary("Holidays"))
		for _, d := range cal.Config().Holidays {
			_, _ = fmt.Fprintf(w, "  %s\n", d)
		}
	}

	now := nowFn()
	days, err := calendar.WorkingDays(cal, now, now.AddDate(0, 0, ahead-1))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Primary(fmt.Sprintf("Working days (next %d days)", ahead)))
	for _, d := range days {
		_, _ = fmt.Fprintf(w, "  %s %s\n", d.Format(calendar.DayKeyLayout), Muted(d.Weekday().String()))
	}
	return nil
}

var calendarSetCmd = LeafCommand{
	Use:   "set",
	Short: "Persist a working calendar as the default",
	SliceFlags: []SliceFlag{
		{Name: "shift", Usage: "shift window, e.g. 08:00-12:00 (repeatable)"},
		{Name: "holiday", Usage: "holiday date YYYY-MM-DD (repeatable)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runCalendarSet(cmd, homeDir)
	},
}.Build()

func runCalendarSet(cmd *cobra.Command, homeDir string) error {
	shifts, _ := cmd.Flags().GetStringSlice("shift")
	holidays, _ := cmd.Flags().GetStringSlice("holiday")

	cal, err := calendar.Config{Shifts: shifts, Holidays: holidays}.Calendar()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.Dir(homeDir), 0755); err != nil {
		return err
	}

	calPath := config.CalendarFilePath(homeDir)
	if err := calendar.SaveConfig(calPath, cal); err != nil {
		return err
	}

	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}
	cfg.CalendarPath = calPath
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	var shiftLabels []string
	for _, s := range cal.Shifts {
		shiftLabels = append(shiftLabels, s.String())
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved calendar (%s, %d holidays) to %s\n",
		strings.Join(shiftLabels, ", "), len(cal.Holidays), calPath)
	return nil
}
