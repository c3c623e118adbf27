package schedulers

import "errors"

var (
	// ErrEmptyInput is returned when a simulation is asked to run with no processes.
	ErrEmptyInput = errors.New("no processes supplied")
	// ErrInvalidQuantum is returned for a round-robin time quantum below 1.
	ErrInvalidQuantum = errors.New("invalid time quantum")
	// ErrInvalidRange is returned for a malformed quantum sweep range.
	ErrInvalidRange = errors.New("invalid quantum range")
	// ErrInvalidProcess is returned for a process with a non-positive id or
	// burst time, a duplicate id, or a negative arrival time.
	ErrInvalidProcess = errors.New("invalid process")
)
