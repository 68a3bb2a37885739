package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkloadByStation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, testPlanJSON)

	out, err := execute(t, "workload", "--plan", path, "--axis", "station")
	require.NoError(t, err)

	assert.Contains(t, out, "Workload by station")
	// T-1 spans Fri 08:00 -> Mon 10:00 over a weekend: 10h worked.
	// Global span Jan 5-9 inclusive is 5 days * 8h capacity.
	assert.Contains(t, out, "ST-1")
	assert.Contains(t, out, "10h")
	assert.Contains(t, out, "25%")
	// T-2 works Mon PM + Tue AM: 8h -> 20%.
	assert.Contains(t, out, "ST-2")
	assert.Contains(t, out, "20%")
}

func TestWorkloadByTeam(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, testPlanJSON)

	out, err := execute(t, "workload", "--plan", path, "--axis", "team")
	require.NoError(t, err)

	assert.Contains(t, out, "Workload by team")
	assert.Contains(t, out, "Milling team")
	assert.Contains(t, out, "10h")
	assert.Contains(t, out, "Turning team")
	assert.Contains(t, out, "8h")
}

func TestWorkloadUnknownAxis(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, testPlanJSON)

	_, err := execute(t, "workload", "--plan", path, "--axis", "machine")
	assert.Error(t, err)
}

func TestWorkloadUnsupportedExport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, testPlanJSON)

	_, err := execute(t, "workload", "--plan", path, "--axis", "station", "--export", "csv")
	assert.Error(t, err)
}

func TestWorkloadEmptyPlan(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, `{"best_order_sequence": [], "product_order_plan": [], "task_plan": []}`)

	out, err := execute(t, "workload", "--plan", path, "--axis", "station", "--export", "")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks in schedule.")
}
