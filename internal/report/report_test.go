package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/schedulers"
)

func sample() []core.Process {
	return []core.Process{
		core.NewProcess(1, 0, 5),
		core.NewProcess(2, 1, 3),
		core.NewProcess(3, 2, 8),
	}
}

func TestWriteResult(t *testing.T) {
	r, err := schedulers.ScheduleFirstComeFirstServe(sample())
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteResult(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "16")
	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "8.67")
}

func TestWriteComparison(t *testing.T) {
	results, err := schedulers.RunAll(sample(), 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteComparison(&buf, results)
	out := buf.String()

	for _, name := range []string{"First-come, first-serve", "Shortest-job-first", "Round-robin"} {
		assert.Contains(t, out, name)
	}
	assert.Equal(t, 1, strings.Count(out, "Comparison"))
}

func TestTitle_Unknown(t *testing.T) {
	assert.Equal(t, "lottery", Title("lottery"))
}
