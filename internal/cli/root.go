package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planview",
	Short: "Analytics and views over a computed production schedule",
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(ganttCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(workloadCmd)
	rootCmd.AddCommand(segmentsCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
