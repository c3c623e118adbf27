package util

import (
	"reflect"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Mean([]float64{1, 2, 3}); got != 2 {
		t.Errorf("Mean = %v, want 2", got)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"odd", []float64{8, 3, 5}, 5},
		{"even", []float64{8, 3, 6, 5}, 5.5},
		{"single", []float64{7}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.values); got != tt.want {
				t.Fatalf("Median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	values := []float64{8, 3, 5}
	Median(values)
	if !reflect.DeepEqual(values, []float64{8, 3, 5}) {
		t.Fatalf("input modified: %v", values)
	}
}
