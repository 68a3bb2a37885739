package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/board"
)

const stampLayout = "2006-01-02 15:04"

var statsCmd = LeafCommand{
	Use:   "stats",
	Short: "Show aggregate statistics for a schedule snapshot",
	StrFlags: []StringFlag{
		{Name: "plan", Usage: "path to the schedule payload JSON"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}.Build()

func runStats(cmd *cobra.Command) error {
	payload, err := loadPayload(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	b := board.New(payload)
	stat, err := b.Statistics()
	if errors.Is(err, board.ErrNoData) {
		_, _ = fmt.Fprintln(w, "No tasks in schedule.")
		return nil
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s\n", Primary("Schedule snapshot "+payload.Fingerprint()))
	_, _ = fmt.Fprintf(w, "Orders:   %d\n", stat.Orders)
	_, _ = fmt.Fprintf(w, "Teams:    %d\n", stat.Teams)
	_, _ = fmt.Fprintf(w, "Stations: %d\n", stat.Stations)
	_, _ = fmt.Fprintf(w, "Tasks:    %d\n", stat.Tasks)
	_, _ = fmt.Fprintf(w, "Span:     %s -> %s (%d days)\n",
		stat.Start.Format(stampLayout), stat.End.Format(stampLayout), stat.Days)
	return nil
}
