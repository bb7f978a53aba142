package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every precondition violation the
	// engines reject before simulating.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrNoProcesses is returned for an empty process list; averages over
	// zero processes are undefined.
	ErrNoProcesses = fmt.Errorf("%w: no processes", ErrInvalidInput)

	// ErrInvalidQuantum is returned when a round robin quantum is below 1.
	ErrInvalidQuantum = fmt.Errorf("%w: time quantum must be >= 1", ErrInvalidInput)
)
