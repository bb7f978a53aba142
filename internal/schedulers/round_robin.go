package schedulers

import (
	"fmt"
	"log/slog"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

// ScheduleRoundRobin time-slices the CPU with the given quantum.
//
// Arrivals are admitted before every dispatch and again right after a slice
// ends, before the preempted process goes back to the tail. A process that
// arrives exactly when a slice ends is therefore queued ahead of it.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (Result, error) {
	if timeQuantum < 1 {
		return Result{}, fmt.Errorf("%w: got %d", core.ErrInvalidQuantum, timeQuantum)
	}
	if err := core.ValidateAll(processes); err != nil {
		return Result{}, err
	}
	slog.Debug("running roundRobin algorithm", "processes", len(processes), "time_quantum", timeQuantum)

	s := newSimulation(processes)
	queue := core.NewReadyQueue(len(s.procs))

	for completed := 0; completed < len(s.procs); {
		s.admit(queue)

		idx, ok := queue.Pop()
		if !ok {
			next, found := s.nextArrival()
			if !found {
				break
			}
			s.idleUntil(next)
			continue
		}

		s.execute(idx, min(s.procs[idx].RemainingTime, timeQuantum))
		s.admit(queue)

		if s.procs[idx].RemainingTime > 0 {
			s.procs[idx].State = core.Queued
			queue.Push(idx)
			continue
		}
		s.complete(idx)
		completed++
	}
	return s.result(RoundRobin)
}

// admit enqueues, in index order, every process that has arrived by now and
// was never queued. Finished processes are skipped by the remaining-time
// check as well as by their state.
func (s *simulation) admit(queue *core.ReadyQueue) {
	for i := range s.procs {
		p := &s.procs[i]
		if p.State == core.NotArrived && p.ArrivalTime <= s.time && p.RemainingTime > 0 {
			p.State = core.Queued
			queue.Push(i)
		}
	}
}

// RRMetrics returns only the averages of ScheduleRoundRobin.
func RRMetrics(processes []core.Process, timeQuantum int) (core.Metrics, error) {
	return metricsOf(ScheduleRoundRobin(processes, timeQuantum))
}
