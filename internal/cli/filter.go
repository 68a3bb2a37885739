package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/board"
)

var filterCmd = LeafCommand{
	Use:   "filter",
	Short: "List tasks matching order/station/team/date filters",
	BoolFlags: []BoolFlag{
		{Name: "list", Usage: "list the available filter values instead of filtering"},
	},
	StrFlags: []StringFlag{
		{Name: "plan", Usage: "path to the schedule payload JSON"},
		{Name: "from", Usage: "range start (YYYY-MM-DD)"},
		{Name: "to", Usage: "range end (YYYY-MM-DD)"},
	},
	SliceFlags: []SliceFlag{
		{Name: "order", Usage: "order code (repeatable)"},
		{Name: "station", Usage: "station code (repeatable)"},
		{Name: "team", Usage: "team code (repeatable)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(cmd)
	},
}.Build()

func runFilter(cmd *cobra.Command) error {
	payload, err := loadPayload(cmd)
	if err != nil {
		return err
	}

	b := board.New(payload)
	w := cmd.OutOrStdout()

	if listFlag, _ := cmd.Flags().GetBool("list"); listFlag {
		printCodeNames(w, "Orders", b.UniqueOrders())
		printCodeNames(w, "Stations", b.UniqueStations())
		printCodeNames(w, "Teams", b.UniqueTeams())
		return nil
	}

	f, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	matched := b.FilterTasks(f)
	if len(matched) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks match the given filters.")
		return nil
	}

	for _, t := range matched {
		_, _ = fmt.Fprintf(w, "%-10s  %-20s  %-10s  %-10s  %-10s  %s -> %s\n",
			t.ID, t.Name, t.OrderCode, t.StationCode, t.TeamCode,
			t.Start.Format(stampLayout), t.End.Format(stampLayout))
	}
	return nil
}

func filterFromFlags(cmd *cobra.Command) (board.Filter, error) {
	orders, _ := cmd.Flags().GetStringSlice("order")
	stations, _ := cmd.Flags().GetStringSlice("station")
	teams, _ := cmd.Flags().GetStringSlice("team")
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")

	f := board.Filter{Orders: orders, Stations: stations, Teams: teams}

	if fromFlag != "" {
		from, err := time.Parse("2006-01-02", fromFlag)
		if err != nil {
			return board.Filter{}, fmt.Errorf("invalid --from value %q (expected YYYY-MM-DD)", fromFlag)
		}
		f.From = from
	}
	if toFlag != "" {
		to, err := time.Parse("2006-01-02", toFlag)
		if err != nil {
			return board.Filter{}, fmt.Errorf("invalid --to value %q (expected YYYY-MM-DD)", toFlag)
		}
		// Make the end of the range inclusive of the whole day.
		f.To = to.AddDate(0, 0, 1).Add(-time.Second)
	}

	return f, nil
}

func printCodeNames(w io.Writer, title string, pairs []board.CodeName) {
	_, _ = fmt.Fprintln(w, Primary(title))
	for _, p := range pairs {
		_, _ = fmt.Fprintf(w, "  %-12s  %s\n", p.Code, p.Name)
	}
}
