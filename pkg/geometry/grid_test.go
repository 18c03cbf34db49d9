package geometry

import "testing"

func TestSnapUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.1, 0.5},
		{0.5, 0.5},
		{0.75, 1.0},
		{3.0, 3.0},
		{3.1622776601683795, 3.5}, // sqrt(10)
		{4.47213595499958, 4.5},   // sqrt(20)
	}

	for _, tt := range tests {
		if got := SnapUp(tt.in); got != tt.want {
			t.Errorf("SnapUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOnGrid(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1, 2.5, 100, 7.5} {
		if !OnGrid(v) {
			t.Errorf("OnGrid(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{0.1, 0.25, 3.3, 0.49999} {
		if OnGrid(v) {
			t.Errorf("OnGrid(%v) = true, want false", v)
		}
	}
}

func TestGridSteps(t *testing.T) {
	tests := []struct {
		extent, span float64
		want         int
	}{
		{2.0, 3.0, 3},  // x in {0, 0.5, 1.0}
		{3.0, 3.0, 1},  // only x = 0
		{4.0, 3.0, 0},  // does not fit
		{2.0, 5.0, 7},  // x in {0, 0.5, ..., 3.0}
		{0.5, 0.5, 1},
	}

	for _, tt := range tests {
		if got := GridSteps(tt.extent, tt.span); got != tt.want {
			t.Errorf("GridSteps(%v, %v) = %d, want %d", tt.extent, tt.span, got, tt.want)
		}
	}
}
