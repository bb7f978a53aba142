package schedulers

import (
	"log/slog"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst runs the non-preemptive variant: whenever the CPU
// frees up, the arrived process with the smallest burst runs to completion.
// Equal bursts go to the process that comes first in the input.
func ScheduleShortestJobFirst(processes []core.Process) (Result, error) {
	if err := core.ValidateAll(processes); err != nil {
		return Result{}, err
	}
	slog.Debug("running sjf algorithm", "processes", len(processes))

	s := newSimulation(processes)
	for completed := 0; completed < len(s.procs); {
		idx := s.shortestArrived()
		if idx == -1 {
			next, ok := s.nextArrival()
			if !ok {
				break
			}
			s.idleUntil(next)
			continue
		}

		s.execute(idx, s.procs[idx].BurstTime)
		s.complete(idx)
		completed++
	}
	return s.result(ShortestJobFirst)
}

// shortestArrived returns the index of the pending process with the strictly
// smallest burst that has arrived by now, or -1.
func (s *simulation) shortestArrived() int {
	idx := -1
	for i, p := range s.procs {
		if p.State != core.NotArrived || p.ArrivalTime > s.time {
			continue
		}
		if idx == -1 || p.BurstTime < s.procs[idx].BurstTime {
			idx = i
		}
	}
	return idx
}

// SJFMetrics returns only the averages of ScheduleShortestJobFirst.
func SJFMetrics(processes []core.Process) (core.Metrics, error) {
	return metricsOf(ScheduleShortestJobFirst(processes))
}
