package schedulers

import (
	"errors"
	"testing"
)

func TestAnalyzeQuantumRange_OrderedAndComplete(t *testing.T) {
	points, err := AnalyzeQuantumRange(testProcesses(), 1, 11)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 11 {
		t.Fatalf("got %d points, want 11", len(points))
	}
	for i, p := range points {
		if p.TimeQuantum != i+1 {
			t.Errorf("points[%d].TimeQuantum = %d, want %d", i, p.TimeQuantum, i+1)
		}
	}

	// each point matches a direct run at that quantum
	direct, err := SimulateRoundRobin(testProcesses(), 4)
	if err != nil {
		t.Fatal(err)
	}
	q4 := points[3]
	if q4.AverageWaitingTime != direct.AverageWaitingTime ||
		q4.AverageTurnAroundTime != direct.AverageTurnAroundTime ||
		q4.ContextSwitches != direct.ContextSwitches {
		t.Errorf("sweep point %+v does not match direct run %+v", q4, direct)
	}
}

func TestAnalyzeQuantumRange_Errors(t *testing.T) {
	tests := []struct {
		name       string
		qMin, qMax int
		want       error
	}{
		{"min below one", 0, 5, ErrInvalidRange},
		{"max below min", 5, 4, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeQuantumRange(testProcesses(), tt.qMin, tt.qMax)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := AnalyzeQuantumRange(nil, 1, 5); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want %v", err, ErrEmptyInput)
	}
}

func TestDefaultQuantumRange(t *testing.T) {
	qMin, qMax := DefaultQuantumRange(testProcesses())
	if qMin != 1 || qMax != 11 {
		t.Fatalf("range = [%d, %d], want [1, 11]", qMin, qMax)
	}
	qMin, qMax = DefaultQuantumRange(nil)
	if qMin != 1 || qMax != 3 {
		t.Fatalf("empty-set range = [%d, %d], want [1, 3]", qMin, qMax)
	}
}

func TestOptimalQuantum_FullScan(t *testing.T) {
	// deliberately non-convex: the minimum sits behind a local rise
	points := []SweepPoint{
		{TimeQuantum: 1, AverageWaitingTime: 5},
		{TimeQuantum: 2, AverageWaitingTime: 3},
		{TimeQuantum: 3, AverageWaitingTime: 4},
		{TimeQuantum: 4, AverageWaitingTime: 2},
	}
	best, ok := OptimalQuantum(points)
	if !ok || best.TimeQuantum != 4 {
		t.Fatalf("optimal = %+v ok=%v, want quantum 4", best, ok)
	}
}

func TestOptimalQuantum_TieTakesSmallestQuantum(t *testing.T) {
	points, err := AnalyzeQuantumRange([]Process{{ID: 1, ArrivalTime: 0, BurstTime: 5}}, 2, 6)
	if err != nil {
		t.Fatal(err)
	}
	// a lone process waits 0 at every quantum, so the tie resolves low
	best, ok := OptimalQuantum(points)
	if !ok || best.TimeQuantum != 2 {
		t.Fatalf("optimal = %+v ok=%v, want quantum 2", best, ok)
	}

	if _, ok := OptimalQuantum(nil); ok {
		t.Fatal("OptimalQuantum(nil) reported ok")
	}
}

func TestAdaptiveQuantum(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		want      int
	}{
		{
			"even count takes middle average", // bursts 3 5 6 8, median 5.5
			testProcesses(),
			4,
		},
		{
			"odd count takes middle", // bursts 3 5 8, median 5
			[]Process{
				{ID: 1, ArrivalTime: 0, BurstTime: 3},
				{ID: 2, ArrivalTime: 0, BurstTime: 5},
				{ID: 3, ArrivalTime: 0, BurstTime: 8},
			},
			4,
		},
		{
			"clamped to one",
			[]Process{{ID: 1, ArrivalTime: 0, BurstTime: 1}},
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdaptiveQuantum(tt.processes)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("AdaptiveQuantum = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := AdaptiveQuantum(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want %v", err, ErrEmptyInput)
	}
}
