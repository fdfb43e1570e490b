package main

import (
	"math"
	"testing"
)

func TestRotatedBounds(t *testing.T) {
	tests := []struct {
		w, h, degrees float64
		wantW, wantH  float64
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 90, 50, 100},
		{100, 50, 180, 100, 50},
		{100, 50, 270, 50, 100},
		{100, 100, 45, 100 * math.Sqrt2, 100 * math.Sqrt2},
	}

	for _, tt := range tests {
		gotW, gotH := rotatedBounds(tt.w, tt.h, tt.degrees)
		if math.Abs(gotW-tt.wantW) > 1e-9 || math.Abs(gotH-tt.wantH) > 1e-9 {
			t.Errorf("rotatedBounds(%v, %v, %v) = %v, %v, want %v, %v",
				tt.w, tt.h, tt.degrees, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}
