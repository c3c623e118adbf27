package schedulers

import (
	"fmt"
	"math"
	"sort"
)

// SimulateRoundRobin runs preemptive round-robin scheduling over a virtual
// clock. Each dispatch grants at most quantum time units; a preempted process
// re-enters the ready queue behind any process that arrived during its slice.
// The quantum may be fractional but must be at least 1.
func SimulateRoundRobin(processes []Process, timeQuantum float64) (*RunResult, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyInput
	}
	if timeQuantum < 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuantum, timeQuantum)
	}
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	procs := make([]Process, len(processes))
	copy(procs, processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ArrivalTime < procs[j].ArrivalTime
	})

	n := len(procs)
	remaining := make([]float64, n)
	completion := make([]float64, n)
	response := make([]float64, n)
	visited := make([]bool, n)
	for i := range procs {
		remaining[i] = procs[i].BurstTime
		response[i] = -1 // not yet dispatched
	}

	currentTime := procs[0].ArrivalTime
	readyQueue := newIndexQueue(n)

	// enqueueArrived moves every not-yet-seen process whose arrival time has
	// passed into the ready queue, lowest id first.
	enqueueArrived := func(now float64) {
		candidates := make([]int, 0, n)
		for i := range procs {
			if !visited[i] && procs[i].ArrivalTime <= now {
				candidates = append(candidates, i)
			}
		}
		sort.Slice(candidates, func(a, b int) bool {
			return procs[candidates[a]].ID < procs[candidates[b]].ID
		})
		for _, i := range candidates {
			readyQueue.PushBack(i)
			visited[i] = true
		}
	}
	enqueueArrived(currentTime)

	timeline := make([]TimelineSegment, 0, n)
	for !readyQueue.Empty() {
		i := readyQueue.PopFront()
		if response[i] < 0 {
			response[i] = currentTime - procs[i].ArrivalTime
		}

		slice := timeQuantum
		if remaining[i] < slice {
			slice = remaining[i]
		}
		timeline = appendSegment(timeline, TimelineSegment{
			ProcessID: procs[i].ID,
			Start:     currentTime,
			End:       currentTime + slice,
		})
		currentTime += slice
		remaining[i] -= slice

		// arrivals during the slice go in ahead of the preempted process
		enqueueArrived(currentTime)
		if remaining[i] > 0 {
			readyQueue.PushBack(i)
		} else {
			completion[i] = currentTime
		}

		if readyQueue.Empty() {
			// next arrival is still in the future: fast-forward, idle time
			// gets no timeline segment
			next := math.Inf(1)
			for j := range procs {
				if !visited[j] && procs[j].ArrivalTime < next {
					next = procs[j].ArrivalTime
				}
			}
			if !math.IsInf(next, 1) {
				currentTime = next
				enqueueArrived(currentTime)
			}
		}
	}

	return DeriveMetrics(procs, completion, response, timeline), nil
}

// appendSegment extends the previous segment instead of appending when the
// same process keeps the CPU across consecutive slices with no gap, so a
// solo process shows up as a single contiguous run.
func appendSegment(timeline []TimelineSegment, seg TimelineSegment) []TimelineSegment {
	if last := len(timeline) - 1; last >= 0 &&
		timeline[last].ProcessID == seg.ProcessID && timeline[last].End == seg.Start {
		timeline[last].End = seg.End
		return timeline
	}
	return append(timeline, seg)
}
