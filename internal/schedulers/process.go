package schedulers

import "fmt"

// Process is one unit of work submitted to a simulation. The engine never
// mutates it; each run keeps its own remaining-time bookkeeping.
type Process struct {
	ID          int
	ArrivalTime float64
	BurstTime   float64
}

// TimelineSegment is one contiguous execution slice on the simulated CPU.
type TimelineSegment struct {
	ProcessID int
	Start     float64
	End       float64
}

// ProcessResult holds the derived per-process timing of a completed run.
type ProcessResult struct {
	ID             int
	ArrivalTime    float64
	BurstTime      float64
	CompletionTime float64
	TurnAroundTime float64
	WaitingTime    float64
	ResponseTime   float64
}

// RunResult is the full outcome of a single simulation. Details are ordered
// by process id, the timeline by start time. CpuUtilization and CpuThroughput
// are display strings (2 and 3 decimal places); everything else keeps full
// numeric precision.
type RunResult struct {
	Details               []ProcessResult
	Timeline              []TimelineSegment
	ContextSwitches       int
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	CpuUtilization        string
	CpuThroughput         string
	TotalTime             float64
}

// SweepPoint is the outcome of one round-robin run inside a quantum sweep.
type SweepPoint struct {
	TimeQuantum           int
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	ContextSwitches       int
}

func validateProcesses(processes []Process) error {
	seen := make(map[int]bool, len(processes))
	for _, p := range processes {
		if p.ID <= 0 {
			return fmt.Errorf("%w: process id %d must be positive", ErrInvalidProcess, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = true
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has negative arrival time %v", ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has non-positive burst time %v", ErrInvalidProcess, p.ID, p.BurstTime)
		}
	}
	return nil
}
