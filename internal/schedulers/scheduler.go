package schedulers

import (
	"fmt"
	"sync"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/util"
)

// Algorithm names accepted by Run.
const (
	FirstComeFirstServe = "fcfs"
	ShortestJobFirst    = "sjf"
	RoundRobin          = "rr"
)

// Algorithms lists the supported algorithms in reporting order.
var Algorithms = []string{FirstComeFirstServe, ShortestJobFirst, RoundRobin}

// Result is the outcome of one simulation run.
type Result struct {
	Algorithm       string
	Processes       []core.Process // simulated copies, in input order
	Timeline        []core.Slice
	Metrics         core.Metrics
	TotalTime       int
	IdleTime        int
	ContextSwitches int
}

// Utilization is the share of the simulated time the CPU was busy.
func (r Result) Utilization() float64 {
	if r.TotalTime == 0 {
		return 0
	}
	return 1 - float64(r.IdleTime)/float64(r.TotalTime)
}

// Throughput is completed processes per time unit.
func (r Result) Throughput() float64 {
	if r.TotalTime == 0 {
		return 0
	}
	return float64(len(r.Processes)) / float64(r.TotalTime)
}

// Run dispatches to the engine registered under algorithm. timeQuantum is
// only read by round robin.
func Run(algorithm string, processes []core.Process, timeQuantum int) (Result, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum)
	}
	return Result{}, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidInput, algorithm)
}

// RunAll runs every algorithm concurrently on its own copy of processes and
// returns the results in Algorithms order.
func RunAll(processes []core.Process, timeQuantum int) ([]Result, error) {
	results := make([]Result, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, name := range Algorithms {
		go func(i int, name string) {
			defer wg.Done()
			results[i], errs[i] = Run(name, processes, timeQuantum)
		}(i, name)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", Algorithms[i], err)
		}
	}
	return results, nil
}

// simulation holds the clock and bookkeeping shared by all engines.
type simulation struct {
	procs    []core.Process
	time     int
	idle     int
	timeline []core.Slice
	switches int
	last     int
	acc      util.MetricsAccumulator
}

func newSimulation(processes []core.Process) *simulation {
	return &simulation{
		procs:    core.Reset(processes),
		timeline: make([]core.Slice, 0, len(processes)),
		last:     -1,
	}
}

// idleUntil moves the clock forward to t, counting the gap as idle time.
func (s *simulation) idleUntil(t int) {
	if s.time < t {
		s.idle += t - s.time
		s.time = t
	}
}

// execute gives process idx the CPU for d units starting at the current time.
func (s *simulation) execute(idx, d int) {
	p := &s.procs[idx]
	if !p.Started() {
		p.StartTime = s.time
	}
	p.State = core.Running
	if s.last != -1 && s.last != idx {
		s.switches++
	}
	s.last = idx

	s.timeline = append(s.timeline, core.Slice{ProcessID: p.ID, Start: s.time, End: s.time + d})
	s.time += d
	p.RemainingTime -= d
}

// complete records the completion of process idx at the current time.
func (s *simulation) complete(idx int) {
	p := &s.procs[idx]
	p.CompletionTime = s.time
	p.State = core.Done
	s.acc.Add(*p)
}

// nextArrival returns the earliest arrival among processes not yet admitted.
func (s *simulation) nextArrival() (int, bool) {
	next, found := 0, false
	for _, p := range s.procs {
		if p.State != core.NotArrived {
			continue
		}
		if !found || p.ArrivalTime < next {
			next, found = p.ArrivalTime, true
		}
	}
	return next, found
}

func (s *simulation) result(algorithm string) (Result, error) {
	metrics, err := s.acc.Metrics()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Algorithm:       algorithm,
		Processes:       s.procs,
		Timeline:        s.timeline,
		Metrics:         metrics,
		TotalTime:       s.time,
		IdleTime:        s.idle,
		ContextSwitches: s.switches,
	}, nil
}

func metricsOf(r Result, err error) (core.Metrics, error) {
	if err != nil {
		return core.Metrics{}, err
	}
	return r.Metrics, nil
}
