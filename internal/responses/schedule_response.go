package responses

import "schedsim/internal/schedulers"

type ProcessResponse struct {
	ProcessId      int     `json:"process_id"`
	ArrivalTime    float64 `json:"arrival_time"`
	BurstTime      float64 `json:"burst_time"`
	CompletionTime float64 `json:"completion_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
	ResponseTime   float64 `json:"response_time"`
}

type TimelineSegmentResponse struct {
	ProcessId int     `json:"process_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

type ScheduleResponse struct {
	TotalTime             float64                   `json:"total_time"`
	ContextSwitches       int                       `json:"context_switches"`
	AverageWaitingTime    float64                   `json:"average_waiting_time"`
	AverageTurnAroundTime float64                   `json:"average_turn_around_time"`
	CpuUtilization        string                    `json:"cpu_utilization"`
	CpuThroughput         string                    `json:"cpu_throughput"`
	Details               []ProcessResponse         `json:"details"`
	Timeline              []TimelineSegmentResponse `json:"timeline"`
}

type SweepPointResponse struct {
	TimeQuantum           int     `json:"time_quantum"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
	ContextSwitches       int     `json:"context_switches"`
}

type SweepResponse struct {
	Points          []SweepPointResponse `json:"points"`
	OptimalQuantum  int                  `json:"optimal_quantum"`
	AdaptiveQuantum int                  `json:"adaptive_quantum"`
}

type AdaptiveResponse struct {
	AdaptiveQuantum int `json:"adaptive_quantum"`
}

type CompareResponse struct {
	TimeQuantum         float64          `json:"time_quantum"`
	FirstComeFirstServe ScheduleResponse `json:"fcfs"`
	RoundRobin          ScheduleResponse `json:"round_robin"`
}

// PackScheduleResponse maps an engine RunResult onto the JSON shape.
func PackScheduleResponse(result *schedulers.RunResult) ScheduleResponse {
	details := make([]ProcessResponse, len(result.Details))
	for i, d := range result.Details {
		details[i] = ProcessResponse{
			ProcessId:      d.ID,
			ArrivalTime:    d.ArrivalTime,
			BurstTime:      d.BurstTime,
			CompletionTime: d.CompletionTime,
			TurnAroundTime: d.TurnAroundTime,
			WaitingTime:    d.WaitingTime,
			ResponseTime:   d.ResponseTime,
		}
	}
	timeline := make([]TimelineSegmentResponse, len(result.Timeline))
	for i, seg := range result.Timeline {
		timeline[i] = TimelineSegmentResponse{
			ProcessId: seg.ProcessID,
			Start:     seg.Start,
			End:       seg.End,
		}
	}
	return ScheduleResponse{
		TotalTime:             result.TotalTime,
		ContextSwitches:       result.ContextSwitches,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageTurnAroundTime: result.AverageTurnAroundTime,
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.CpuThroughput,
		Details:               details,
		Timeline:              timeline,
	}
}

// PackSweepResponse maps sweep points plus the optimal and adaptive quanta.
func PackSweepResponse(points []schedulers.SweepPoint, optimal, adaptive int) SweepResponse {
	packed := make([]SweepPointResponse, len(points))
	for i, p := range points {
		packed[i] = SweepPointResponse{
			TimeQuantum:           p.TimeQuantum,
			AverageWaitingTime:    p.AverageWaitingTime,
			AverageTurnAroundTime: p.AverageTurnAroundTime,
			ContextSwitches:       p.ContextSwitches,
		}
	}
	return SweepResponse{
		Points:          packed,
		OptimalQuantum:  optimal,
		AdaptiveQuantum: adaptive,
	}
}
