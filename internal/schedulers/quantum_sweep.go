package schedulers

import (
	"fmt"
	"math"
	"sync"

	"schedsim/internal/util"
)

// AnalyzeQuantumRange re-runs round-robin for every integer quantum in the
// inclusive range [qMin, qMax] and reports one SweepPoint per quantum,
// ordered ascending. The per-quantum runs are independent, so they fan out
// on goroutines with a pre-sized result slot each.
func AnalyzeQuantumRange(processes []Process, qMin, qMax int) ([]SweepPoint, error) {
	if qMin < 1 || qMax < qMin {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, qMin, qMax)
	}
	if len(processes) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	points := make([]SweepPoint, qMax-qMin+1)
	var wg sync.WaitGroup
	for q := qMin; q <= qMax; q++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			// inputs were validated above, the run cannot fail
			result, _ := SimulateRoundRobin(processes, float64(q))
			points[q-qMin] = SweepPoint{
				TimeQuantum:           q,
				AverageWaitingTime:    result.AverageWaitingTime,
				AverageTurnAroundTime: result.AverageTurnAroundTime,
				ContextSwitches:       result.ContextSwitches,
			}
		}(q)
	}
	wg.Wait()
	return points, nil
}

// DefaultQuantumRange is the range swept when the caller does not pick one:
// 1 up to the longest burst plus 3, and never narrower than [1, 2].
func DefaultQuantumRange(processes []Process) (int, int) {
	var maxBurst float64
	for _, p := range processes {
		if p.BurstTime > maxBurst {
			maxBurst = p.BurstTime
		}
	}
	qMax := int(math.Floor(maxBurst)) + 3
	if qMax < 2 {
		qMax = 2
	}
	return 1, qMax
}

// OptimalQuantum picks the sweep point with the lowest average waiting time.
// On a tie the earliest point wins, which for an ascending sweep is the
// smallest quantum. The second return is false for an empty sweep.
func OptimalQuantum(points []SweepPoint) (SweepPoint, bool) {
	if len(points) == 0 {
		return SweepPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.AverageWaitingTime < best.AverageWaitingTime {
			best = p
		}
	}
	return best, true
}

// AdaptiveQuantum is a cheap heuristic quantum derived from the burst
// distribution alone: max(1, floor(0.8 * median burst)). It approximates a
// good quantum without running a sweep and need not match the sweep optimum.
func AdaptiveQuantum(processes []Process) (int, error) {
	if len(processes) == 0 {
		return 0, ErrEmptyInput
	}
	if err := validateProcesses(processes); err != nil {
		return 0, err
	}
	bursts := make([]float64, len(processes))
	for i, p := range processes {
		bursts[i] = p.BurstTime
	}
	q := int(math.Floor(0.8 * util.Median(bursts)))
	if q < 1 {
		q = 1
	}
	return q, nil
}
