package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsWeekendSpan(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, testPlanJSON)

	out, err := execute(t, "segments", "--plan", path, "--task", "T-1")
	require.NoError(t, err)

	assert.Contains(t, out, "worked: 10h")
	assert.Contains(t, out, "T-1_seg_0")
	assert.Contains(t, out, "T-1_seg_1")
	assert.Contains(t, out, "T-1_seg_2")
	assert.NotContains(t, out, "T-1_seg_3")
}

func TestSegmentsTaskNotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, testPlanJSON)

	_, err := execute(t, "segments", "--plan", path, "--task", "T-404")
	assert.Error(t, err)
}

func TestSegmentsMissingTaskFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writePlan(t, testPlanJSON)

	_, err := execute(t, "segments", "--plan", path, "--task", "")
	assert.Error(t, err)
}
