package main

import "time"

// AnimationLoops describes how many times a sequence plays.
// Remaining is only meaningful when Infinite is false.
type AnimationLoops struct {
	Infinite  bool
	Remaining int
}

// InfiniteLoops reports playback that cycles forever.
func InfiniteLoops() AnimationLoops { return AnimationLoops{Infinite: true} }

// FiniteLoops reports playback that stops after n complete passes.
func FiniteLoops(n int) AnimationLoops { return AnimationLoops{Remaining: n} }

// Frame is a single fully composited animation frame. Every frame
// covers the whole canvas; inter-frame disposal and blending are
// resolved at decode time, never at playback time.
type Frame struct {
	Pix   []byte
	Delay time.Duration
}

// AnimatedSequence holds the decoded frames of an animation together
// with its canvas size and loop policy.
type AnimatedSequence struct {
	Frames []Frame
	Loops  AnimationLoops
	W, H   int
}

// PlaybackUpdate is the outcome of advancing a player by one tick.
type PlaybackUpdate int

const (
	// PlaybackNoChange means the current frame is still being shown.
	PlaybackNoChange PlaybackUpdate = iota
	// PlaybackFrameChanged means the displayed frame must be replaced.
	PlaybackFrameChanged
	// PlaybackFinished means the final loop just completed. Reported
	// exactly once; later calls return PlaybackNoChange.
	PlaybackFinished
)

// AnimationPlayer steps through a sequence using wall-clock deltas
// supplied by the frame loop. It holds no timers of its own, so a
// paused caller simply stops feeding it time.
type AnimationPlayer struct {
	seq      *AnimatedSequence
	index    int
	elapsed  time.Duration
	loops    AnimationLoops
	finished bool
}

// NewAnimationPlayer starts playback at the first frame.
func NewAnimationPlayer(seq *AnimatedSequence) *AnimationPlayer {
	return &AnimationPlayer{seq: seq, loops: seq.Loops}
}

// Index returns the current frame index.
func (p *AnimationPlayer) Index() int { return p.index }

// CurrentFrame returns the frame currently being shown.
func (p *AnimationPlayer) CurrentFrame() *Frame { return &p.seq.Frames[p.index] }

// Finished reports whether the final loop has completed.
func (p *AnimationPlayer) Finished() bool { return p.finished }

// Advance accumulates elapsed time and moves to the next frame once
// the current frame's delay has passed. Residual time past the delay
// is discarded rather than carried over, so a long stall does not
// cause a burst of catch-up frames.
func (p *AnimationPlayer) Advance(dt time.Duration) PlaybackUpdate {
	if p.finished {
		return PlaybackNoChange
	}
	p.elapsed += dt
	if p.elapsed <= p.seq.Frames[p.index].Delay {
		return PlaybackNoChange
	}
	p.elapsed = 0
	p.index++
	if p.index != len(p.seq.Frames) {
		return PlaybackFrameChanged
	}
	p.index = 0
	if p.loops.Infinite {
		return PlaybackFrameChanged
	}
	p.loops.Remaining--
	if p.loops.Remaining <= 0 {
		p.finished = true
		p.index = len(p.seq.Frames) - 1
		return PlaybackFinished
	}
	return PlaybackFrameChanged
}
