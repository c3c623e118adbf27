package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/schedulers"
)

// Schedule writes the Gantt chart and per-process timing table of one run.
func Schedule(w io.Writer, title string, result *schedulers.RunResult) {
	_, _ = fmt.Fprintln(w, title)
	Gantt(w, result.Timeline)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Wait", "Turnaround", "Response"})
	for _, d := range result.Details {
		table.Append([]string{
			strconv.Itoa(d.ID),
			formatTime(d.ArrivalTime),
			formatTime(d.BurstTime),
			formatTime(d.CompletionTime),
			formatTime(d.WaitingTime),
			formatTime(d.TurnAroundTime),
			formatTime(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnAroundTime),
		""})
	table.Render()

	_, _ = fmt.Fprintf(w, "Total time: %s | Context switches: %d | CPU utilization: %s%% | Throughput: %s/t\n\n",
		formatTime(result.TotalTime), result.ContextSwitches, result.CpuUtilization, result.CpuThroughput)
}

// Gantt writes the timeline as a chart: one row of process ids, one row of
// slice boundary times.
func Gantt(w io.Writer, timeline []schedulers.TimelineSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, seg := range timeline {
		pid := "P" + strconv.Itoa(seg.ProcessID)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, seg := range timeline {
		_, _ = fmt.Fprint(w, formatTime(seg.Start), "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, formatTime(seg.End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Sweep writes the quantum sweep table followed by the optimal and adaptive
// quanta.
func Sweep(w io.Writer, points []schedulers.SweepPoint, optimal, adaptive int) {
	_, _ = fmt.Fprintln(w, "Quantum sweep")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Quantum", "Avg Wait", "Avg Turnaround", "Ctx Switches"})
	for _, p := range points {
		table.Append([]string{
			strconv.Itoa(p.TimeQuantum),
			fmt.Sprintf("%.2f", p.AverageWaitingTime),
			fmt.Sprintf("%.2f", p.AverageTurnAroundTime),
			strconv.Itoa(p.ContextSwitches),
		})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "Optimal quantum: %d | Adaptive quantum: %d\n\n", optimal, adaptive)
}

func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
