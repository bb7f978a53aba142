package schedulers

import (
	"log/slog"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes in the order given. The list is
// expected to be sorted by arrival time already; it is not re-sorted here.
func ScheduleFirstComeFirstServe(processes []core.Process) (Result, error) {
	if err := core.ValidateAll(processes); err != nil {
		return Result{}, err
	}
	slog.Debug("running fcfs algorithm", "processes", len(processes))

	s := newSimulation(processes)
	for i := range s.procs {
		s.idleUntil(s.procs[i].ArrivalTime)
		s.execute(i, s.procs[i].BurstTime)
		s.complete(i)
	}
	return s.result(FirstComeFirstServe)
}

// FCFSMetrics returns only the averages of ScheduleFirstComeFirstServe.
func FCFSMetrics(processes []core.Process) (core.Metrics, error) {
	return metricsOf(ScheduleFirstComeFirstServe(processes))
}
