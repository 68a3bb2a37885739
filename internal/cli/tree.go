package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/board"
)

var treeCmd = LeafCommand{
	Use:   "tree",
	Short: "Show orders with their tasks and product sequences",
	StrFlags: []StringFlag{
		{Name: "plan", Usage: "path to the schedule payload JSON"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(cmd)
	},
}.Build()

func runTree(cmd *cobra.Command) error {
	payload, err := loadPayload(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	tree := board.New(payload).OrderTree()
	if len(tree) == 0 {
		_, _ = fmt.Fprintln(w, "No orders in schedule.")
		return nil
	}

	for _, node := range tree {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Primary(node.Code), node.Name)
		if len(node.Products) > 0 {
			_, _ = fmt.Fprintf(w, "  products: %s\n", strings.Join(node.Products, ", "))
		}
		for _, t := range node.Tasks {
			_, _ = fmt.Fprintf(w, "  %-10s  %-20s  %s -> %s\n",
				t.ID, t.Name, t.Start.Format(stampLayout), t.End.Format(stampLayout))
		}
	}
	return nil
}
