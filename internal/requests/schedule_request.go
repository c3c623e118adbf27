package requests

import "schedsim/internal/schedulers"

type Job struct {
	ProcessId   int     `json:"process_id"`
	ArrivalTime float64 `json:"arrival_time"`
	BurstTime   float64 `json:"burst_time"`
}

type ScheduleRequest struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum overrides the configured round-robin quantum when set.
	TimeQuantum float64 `json:"time_quantum,omitempty"`
}

type SweepRequest struct {
	Jobs []Job `json:"jobs"`
	// Zero bounds mean "derive the default range from the burst times".
	MinQuantum int `json:"min_quantum,omitempty"`
	MaxQuantum int `json:"max_quantum,omitempty"`
}

// Processes converts the submitted jobs into engine processes.
func Processes(jobs []Job) []schedulers.Process {
	processes := make([]schedulers.Process, len(jobs))
	for i, job := range jobs {
		processes[i] = schedulers.Process{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		}
	}
	return processes
}
