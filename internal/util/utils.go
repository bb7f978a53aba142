package util

import "github.com/mahmoudKheyrati/cpu-scheduler/internal/core"

// MetricsAccumulator sums per-process timings over one run and reduces
// them to averages.
type MetricsAccumulator struct {
	turnaroundSum int
	waitingSum    int
	responseSum   int
	count         int
}

// Add folds one completed process into the sums.
func (m *MetricsAccumulator) Add(p core.Process) {
	m.turnaroundSum += p.Turnaround()
	m.waitingSum += p.Waiting()
	m.responseSum += p.Response()
	m.count++
}

func (m *MetricsAccumulator) Count() int { return m.count }

// Metrics divides the sums by the number of processes added.
func (m *MetricsAccumulator) Metrics() (core.Metrics, error) {
	if m.count == 0 {
		return core.Metrics{}, core.ErrNoProcesses
	}
	n := float64(m.count)
	return core.Metrics{
		AvgTurnaround: float64(m.turnaroundSum) / n,
		AvgWaiting:    float64(m.waitingSum) / n,
		AvgResponse:   float64(m.responseSum) / n,
	}, nil
}

// CalculateAverage averages the timings of already simulated processes.
func CalculateAverage(processes []core.Process) (core.Metrics, error) {
	var acc MetricsAccumulator
	for _, p := range processes {
		acc.Add(p)
	}
	return acc.Metrics()
}
