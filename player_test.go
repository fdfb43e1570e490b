package main

import (
	"testing"
	"time"
)

func testSequence(loops AnimationLoops, delays ...time.Duration) *AnimatedSequence {
	frames := make([]Frame, len(delays))
	for i, d := range delays {
		frames[i] = Frame{Pix: []byte{byte(i)}, Delay: d}
	}
	return &AnimatedSequence{Frames: frames, Loops: loops, W: 1, H: 1}
}

func TestPlayerHoldsFrameUntilDelayPasses(t *testing.T) {
	seq := testSequence(InfiniteLoops(), 100*time.Millisecond, 100*time.Millisecond)
	p := NewAnimationPlayer(seq)

	if got := p.Advance(40 * time.Millisecond); got != PlaybackNoChange {
		t.Errorf("Advance(40ms) = %v, want PlaybackNoChange", got)
	}
	// Exactly the delay is not yet past it.
	if got := p.Advance(60 * time.Millisecond); got != PlaybackNoChange {
		t.Errorf("Advance to exactly 100ms = %v, want PlaybackNoChange", got)
	}
	if got := p.Advance(time.Millisecond); got != PlaybackFrameChanged {
		t.Errorf("Advance past delay = %v, want PlaybackFrameChanged", got)
	}
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1", p.Index())
	}
}

func TestPlayerDiscardsResidualTime(t *testing.T) {
	seq := testSequence(InfiniteLoops(), 100*time.Millisecond, 100*time.Millisecond)
	p := NewAnimationPlayer(seq)

	// A long stall advances one frame, not several.
	if got := p.Advance(350 * time.Millisecond); got != PlaybackFrameChanged {
		t.Fatalf("Advance(350ms) = %v, want PlaybackFrameChanged", got)
	}
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1", p.Index())
	}
	// The excess was not carried over, so the next frame gets a full delay.
	if got := p.Advance(90 * time.Millisecond); got != PlaybackNoChange {
		t.Errorf("Advance(90ms) after stall = %v, want PlaybackNoChange", got)
	}
}

func TestPlayerInfiniteLoopWraps(t *testing.T) {
	seq := testSequence(InfiniteLoops(), 10*time.Millisecond, 10*time.Millisecond)
	p := NewAnimationPlayer(seq)

	for cycle := 0; cycle < 3; cycle++ {
		for want := 1; want >= 0; want-- {
			if got := p.Advance(11 * time.Millisecond); got != PlaybackFrameChanged {
				t.Fatalf("cycle %d: Advance = %v, want PlaybackFrameChanged", cycle, got)
			}
		}
		if p.Index() != 0 {
			t.Fatalf("cycle %d: Index() = %d, want 0 after wrap", cycle, p.Index())
		}
	}
	if p.Finished() {
		t.Error("infinite playback reported Finished")
	}
}

func TestPlayerFiniteLoopFinishesOnce(t *testing.T) {
	seq := testSequence(FiniteLoops(2), 10*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond)
	p := NewAnimationPlayer(seq)

	var finished int
	for i := 0; i < 6; i++ {
		switch p.Advance(11 * time.Millisecond) {
		case PlaybackFinished:
			finished++
		case PlaybackNoChange:
			t.Fatalf("step %d: unexpected PlaybackNoChange before finish", i)
		}
	}
	if finished != 1 {
		t.Fatalf("got %d PlaybackFinished results, want 1", finished)
	}
	if !p.Finished() {
		t.Error("Finished() = false after final loop")
	}
	// The last frame stays on screen.
	if p.Index() != len(seq.Frames)-1 {
		t.Errorf("Index() = %d, want %d", p.Index(), len(seq.Frames)-1)
	}
	// Further time is ignored entirely.
	for i := 0; i < 3; i++ {
		if got := p.Advance(time.Second); got != PlaybackNoChange {
			t.Errorf("Advance after finish = %v, want PlaybackNoChange", got)
		}
	}
	if p.Index() != len(seq.Frames)-1 {
		t.Errorf("Index() moved after finish: %d", p.Index())
	}
}

func TestPlayerSinglePass(t *testing.T) {
	seq := testSequence(FiniteLoops(1), 10*time.Millisecond, 10*time.Millisecond)
	p := NewAnimationPlayer(seq)

	if got := p.Advance(11 * time.Millisecond); got != PlaybackFrameChanged {
		t.Fatalf("first step = %v, want PlaybackFrameChanged", got)
	}
	if got := p.Advance(11 * time.Millisecond); got != PlaybackFinished {
		t.Fatalf("second step = %v, want PlaybackFinished", got)
	}
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1", p.Index())
	}
}

func TestPlayerCurrentFrame(t *testing.T) {
	seq := testSequence(InfiniteLoops(), 10*time.Millisecond, 10*time.Millisecond)
	p := NewAnimationPlayer(seq)

	if p.CurrentFrame().Pix[0] != 0 {
		t.Errorf("initial frame pix = %d, want 0", p.CurrentFrame().Pix[0])
	}
	p.Advance(11 * time.Millisecond)
	if p.CurrentFrame().Pix[0] != 1 {
		t.Errorf("second frame pix = %d, want 1", p.CurrentFrame().Pix[0])
	}
}
