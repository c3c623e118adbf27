package schedulers

import (
	"fmt"
	"sort"

	"schedsim/internal/util"
)

// DeriveMetrics turns the raw outcome of a simulation into a RunResult. The
// procs, completion and response slices are parallel and ordered however the
// simulator ran them; details come back sorted by process id.
func DeriveMetrics(procs []Process, completion, response []float64, timeline []TimelineSegment) *RunResult {
	details := make([]ProcessResult, len(procs))
	waitingTimes := make([]float64, len(procs))
	turnAroundTimes := make([]float64, len(procs))
	var burstSum float64

	for i, p := range procs {
		turnAround := completion[i] - p.ArrivalTime
		details[i] = ProcessResult{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			CompletionTime: completion[i],
			TurnAroundTime: turnAround,
			WaitingTime:    turnAround - p.BurstTime,
			ResponseTime:   response[i],
		}
		turnAroundTimes[i] = turnAround
		waitingTimes[i] = turnAround - p.BurstTime
		burstSum += p.BurstTime
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].ID < details[j].ID
	})

	contextSwitches := 0
	for k := 1; k < len(timeline); k++ {
		if timeline[k].ProcessID != timeline[k-1].ProcessID {
			contextSwitches++
		}
	}

	var totalTime float64
	if len(timeline) > 0 {
		totalTime = timeline[len(timeline)-1].End
	}

	utilization := "0.00"
	throughput := "0.000"
	if totalTime > 0 {
		utilization = fmt.Sprintf("%.2f", 100*burstSum/totalTime)
		throughput = fmt.Sprintf("%.3f", float64(len(procs))/totalTime)
	}

	return &RunResult{
		Details:               details,
		Timeline:              timeline,
		ContextSwitches:       contextSwitches,
		AverageWaitingTime:    util.Mean(waitingTimes),
		AverageTurnAroundTime: util.Mean(turnAroundTimes),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		TotalTime:             totalTime,
	}
}
