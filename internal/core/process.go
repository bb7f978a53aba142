package core

import "fmt"

// Unset marks a StartTime that has not been assigned yet.
const Unset = -1

// State tracks where a process is in a single simulation run.
type State int

const (
	NotArrived State = iota
	Queued
	Running
	Done
)

func (s State) String() string {
	switch s {
	case NotArrived:
		return "not-arrived"
	case Queued:
		return "queued"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Process is one CPU-bound job. ID, ArrivalTime and BurstTime are inputs;
// the remaining fields are owned by the engine simulating it.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int

	RemainingTime  int
	StartTime      int
	CompletionTime int
	State          State
}

// NewProcess returns a process ready to be simulated.
func NewProcess(id, arrivalTime, burstTime int) Process {
	p := Process{ID: id, ArrivalTime: arrivalTime, BurstTime: burstTime}
	p.reset()
	return p
}

func (p *Process) reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = Unset
	p.CompletionTime = 0
	p.State = NotArrived
}

// Validate checks the input fields.
func (p Process) Validate() error {
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: process %d: arrival time %d is negative", ErrInvalidInput, p.ID, p.ArrivalTime)
	}
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: process %d: burst time %d must be positive", ErrInvalidInput, p.ID, p.BurstTime)
	}
	return nil
}

// Started reports whether the process has been dispatched at least once.
func (p Process) Started() bool { return p.StartTime != Unset }

func (p Process) Turnaround() int { return p.CompletionTime - p.ArrivalTime }

func (p Process) Waiting() int { return p.Turnaround() - p.BurstTime }

func (p Process) Response() int { return p.StartTime - p.ArrivalTime }

// Reset returns an independent copy of src with every simulation field
// cleared. src is left untouched.
func Reset(src []Process) []Process {
	dst := make([]Process, len(src))
	copy(dst, src)
	for i := range dst {
		dst[i].reset()
	}
	return dst
}

// ValidateAll rejects an empty list or any process with invalid inputs.
func ValidateAll(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
