package schedulers

import "sort"

// SimulateFCFS runs non-preemptive first-come-first-served scheduling: each
// process executes its full burst in arrival order, ties kept in input order.
// Since a process never runs before its only dispatch, response time equals
// waiting time.
func SimulateFCFS(processes []Process) (*RunResult, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyInput
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
	completion := make([]float64, n)
	response := make([]float64, n)
	timeline := make([]TimelineSegment, 0, n)

	currentTime := 0.0
	for i := range procs {
		if currentTime < procs[i].ArrivalTime {
			// idle until the next arrival, no timeline segment
			currentTime = procs[i].ArrivalTime
		}
		response[i] = currentTime - procs[i].ArrivalTime
		timeline = append(timeline, TimelineSegment{
			ProcessID: procs[i].ID,
			Start:     currentTime,
			End:       currentTime + procs[i].BurstTime,
		})
		currentTime += procs[i].BurstTime
		completion[i] = currentTime
	}

	return DeriveMetrics(procs, completion, response, timeline), nil
}
