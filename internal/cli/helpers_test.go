package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// testPlanJSON is a small snapshot: two orders, two teams, two
// stations, with T-1 spanning the weekend of Jan 6-7 2024.
const testPlanJSON = `{
  "best_order_sequence": ["ORD-2", "ORD-1"],
  "product_order_plan": [
    {"Order code": "ORD-1", "Order name": "Engine batch 1", "planstart": "2024-01-05 08:00:00", "planend": "2024-01-08 18:00:00"},
    {"Order code": "ORD-2", "Order name": "Engine batch 2", "planstart": "2024-01-08 08:00:00", "planend": "2024-01-09 18:00:00"}
  ],
  "task_plan": [
    {
      "task id": "T-1", "task_code": "T-1-C", "process_code": "P-10", "name": "Mill casing",
      "order code": "ORD-1", "order_name": "Engine batch 1", "product_code": "PRD-A",
      "planstart": "2024-01-05 08:00:00", "planend": "2024-01-08 10:00:00",
      "team id": "10", "team_code": "TM-1", "team name": "Milling team",
      "station id": "20", "station code": "ST-1", "station name": "Mill 1"
    },
    {
      "task id": "T-2", "task_code": "T-2-C", "process_code": "P-20", "name": "Turn shaft",
      "order code": "ORD-2", "order_name": "Engine batch 2", "product_code": "PRD-B",
      "planstart": "2024-01-08 14:00:00", "planend": "2024-01-09 12:00:00",
      "team id": "11", "team_code": "TM-2", "team name": "Turning team",
      "station id": "21", "station code": "ST-2", "station name": "Lathe 1"
    }
  ]
}`

// writePlan writes a payload JSON to a temp file and returns its path.
func writePlan(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))
	return path
}

// execute runs the root command with args and returns its output. Flag
// values are reset first; the command tree is shared across tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
