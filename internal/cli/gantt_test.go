package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGanttByOrder(t *testing.T) {
	path := writePlan(t, testPlanJSON)

	out, err := execute(t, "gantt", "--plan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Engine batch 1")
	assert.Contains(t, out, "Engine batch 2")
	assert.Contains(t, out, "T-1")
}

func TestGanttByStation(t *testing.T) {
	path := writePlan(t, testPlanJSON)

	out, err := execute(t, "gantt", "--plan", path, "--by", "station")
	require.NoError(t, err)
	assert.Contains(t, out, "Mill 1")
	assert.Contains(t, out, "Lathe 1")
}

func TestGanttByTeam(t *testing.T) {
	path := writePlan(t, testPlanJSON)

	out, err := execute(t, "gantt", "--plan", path, "--by", "team")
	require.NoError(t, err)
	assert.Contains(t, out, "Milling team")
	assert.Contains(t, out, "Turning team")
}

func TestGanttUnknownAxis(t *testing.T) {
	path := writePlan(t, testPlanJSON)

	_, err := execute(t, "gantt", "--plan", path, "--by", "machine")
	assert.Error(t, err)
}

func TestGanttEmptyPlan(t *testing.T) {
	path := writePlan(t, `{"best_order_sequence": [], "product_order_plan": [], "task_plan": []}`)

	out, err := execute(t, "gantt", "--plan", path, "--by", "order")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks in schedule.")
}
