package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

func finished(arrival, burst, start, completion int) core.Process {
	p := core.NewProcess(0, arrival, burst)
	p.StartTime, p.CompletionTime = start, completion
	return p
}

func TestMetricsAccumulator(t *testing.T) {
	var acc MetricsAccumulator
	acc.Add(finished(0, 5, 0, 5))
	acc.Add(finished(1, 3, 5, 8))
	acc.Add(finished(2, 8, 8, 16))

	require.Equal(t, 3, acc.Count())
	m, err := acc.Metrics()
	require.NoError(t, err)
	assert.InDelta(t, 26.0/3, m.AvgTurnaround, 1e-9)
	assert.InDelta(t, 10.0/3, m.AvgWaiting, 1e-9)
	assert.InDelta(t, 10.0/3, m.AvgResponse, 1e-9)
}

func TestMetricsAccumulator_EmptyIsRejected(t *testing.T) {
	var acc MetricsAccumulator
	m, err := acc.Metrics()
	assert.ErrorIs(t, err, core.ErrNoProcesses)
	assert.False(t, math.IsNaN(m.AvgWaiting))
}

func TestCalculateAverage(t *testing.T) {
	m, err := CalculateAverage([]core.Process{finished(0, 4, 0, 8), finished(2, 2, 4, 6)})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, m.AvgTurnaround, 1e-9)
	assert.InDelta(t, 3.0, m.AvgWaiting, 1e-9)
	assert.InDelta(t, 1.0, m.AvgResponse, 1e-9)

	_, err = CalculateAverage(nil)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
