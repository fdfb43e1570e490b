package main

import "testing"

// Orientation state lives outside the texture, so these tests build
// handles directly without touching the GPU.
func orientationOnlyHandle() *ImageHandle {
	return &ImageHandle{widthMult: 1, heightMult: 1}
}

func TestRotateRightSteps(t *testing.T) {
	h := orientationOnlyHandle()

	want := []float64{90, 180, 270, 0}
	for i, w := range want {
		h.RotateRight()
		if h.Rotation() != w {
			t.Errorf("after %d RotateRight calls: Rotation() = %v, want %v", i+1, h.Rotation(), w)
		}
	}
}

func TestRotateLeftSteps(t *testing.T) {
	h := orientationOnlyHandle()

	want := []float64{270, 180, 90, 0}
	for i, w := range want {
		h.RotateLeft()
		if h.Rotation() != w {
			t.Errorf("after %d RotateLeft calls: Rotation() = %v, want %v", i+1, h.Rotation(), w)
		}
	}
}

func TestRotateRightSnapsFromFineRotation(t *testing.T) {
	tests := []struct {
		start float64
		want  float64
	}{
		{1, 90},
		{89, 90},
		{91, 180},
		{271, 0},
		{359, 0},
	}

	for _, tt := range tests {
		h := orientationOnlyHandle()
		h.rotation = tt.start
		h.RotateRight()
		if h.Rotation() != tt.want {
			t.Errorf("RotateRight from %v: got %v, want %v", tt.start, h.Rotation(), tt.want)
		}
	}
}

func TestRotateLeftSnapsFromFineRotation(t *testing.T) {
	tests := []struct {
		start float64
		want  float64
	}{
		{1, 0},
		{89, 0},
		{91, 90},
		{269, 180},
		{359, 270},
	}

	for _, tt := range tests {
		h := orientationOnlyHandle()
		h.rotation = tt.start
		h.RotateLeft()
		if h.Rotation() != tt.want {
			t.Errorf("RotateLeft from %v: got %v, want %v", tt.start, h.Rotation(), tt.want)
		}
	}
}

func TestFineRotationWraps(t *testing.T) {
	h := orientationOnlyHandle()

	h.RotateCCW1()
	if h.Rotation() != 359 {
		t.Errorf("RotateCCW1 from 0: got %v, want 359", h.Rotation())
	}
	h.RotateCW1()
	if h.Rotation() != 0 {
		t.Errorf("RotateCW1 from 359: got %v, want 0", h.Rotation())
	}
}

func TestFlipsToggle(t *testing.T) {
	h := orientationOnlyHandle()

	h.FlipHorizontal()
	if wx, wy := h.FlipScale(); wx != -1 || wy != 1 {
		t.Errorf("after FlipHorizontal: FlipScale() = %v, %v", wx, wy)
	}
	h.FlipVertical()
	if wx, wy := h.FlipScale(); wx != -1 || wy != -1 {
		t.Errorf("after FlipVertical: FlipScale() = %v, %v", wx, wy)
	}
	h.FlipHorizontal()
	h.FlipVertical()
	if wx, wy := h.FlipScale(); wx != 1 || wy != 1 {
		t.Errorf("flips did not toggle back: FlipScale() = %v, %v", wx, wy)
	}
}

func TestResetOrientation(t *testing.T) {
	h := orientationOnlyHandle()
	h.rotation = 123
	h.FlipHorizontal()
	h.FlipVertical()

	h.ResetOrientation()

	if h.Rotation() != 0 {
		t.Errorf("Rotation() = %v after reset", h.Rotation())
	}
	if wx, wy := h.FlipScale(); wx != 1 || wy != 1 {
		t.Errorf("FlipScale() = %v, %v after reset", wx, wy)
	}
}
