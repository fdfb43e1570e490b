package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageHandle owns the GPU texture for one gallery entry together
// with its playback and orientation state. Orientation is applied at
// draw time; the texture always holds the unrotated pixels.
type ImageHandle struct {
	texture *ebiten.Image
	player  *AnimationPlayer

	rotation   float64 // degrees in [0, 360)
	widthMult  float64 // -1 when flipped horizontally
	heightMult float64 // -1 when flipped vertically
}

// NewImageHandle uploads a decoded image and, for animations, starts
// playback at the first frame.
func NewImageHandle(dec *DecodedImage) *ImageHandle {
	h := &ImageHandle{widthMult: 1, heightMult: 1}
	if dec.Anim != nil {
		h.player = NewAnimationPlayer(dec.Anim)
		h.texture = ebiten.NewImage(dec.Anim.W, dec.Anim.H)
		h.texture.WritePixels(h.player.CurrentFrame().Pix)
		return h
	}
	h.texture = dec.Static.NewTexture()
	return h
}

// Update advances playback by the elapsed frame time and refreshes
// the texture in place when the visible frame changes. Once the final
// loop completes the player is dropped and the handle behaves like a
// static image.
func (h *ImageHandle) Update(dt time.Duration) {
	if h.player == nil {
		return
	}
	switch h.player.Advance(dt) {
	case PlaybackFrameChanged:
		h.texture.WritePixels(h.player.CurrentFrame().Pix)
	case PlaybackFinished:
		h.player = nil
	}
}

// Texture returns the current GPU texture.
func (h *ImageHandle) Texture() *ebiten.Image { return h.texture }

// Size returns the unrotated pixel dimensions.
func (h *ImageHandle) Size() (int, int) {
	b := h.texture.Bounds()
	return b.Dx(), b.Dy()
}

// Animated reports whether playback is still running.
func (h *ImageHandle) Animated() bool { return h.player != nil }

// Rotation returns the current rotation in degrees.
func (h *ImageHandle) Rotation() float64 { return h.rotation }

// FlipScale returns the per-axis draw multipliers, -1 on a flipped
// axis.
func (h *ImageHandle) FlipScale() (float64, float64) { return h.widthMult, h.heightMult }

// RotateRight rotates clockwise to the next multiple of 90 degrees,
// so a fine-rotated image snaps to the upcoming quarter turn instead
// of overshooting it.
func (h *ImageHandle) RotateRight() {
	h.rotation += 90 - math.Mod(h.rotation, 90)
	if h.rotation >= 360 {
		h.rotation = 0
	}
}

// RotateLeft rotates counterclockwise to the previous multiple of 90
// degrees.
func (h *ImageHandle) RotateLeft() {
	m := math.Mod(h.rotation, 90)
	if m == 0 {
		h.rotation -= 90
	} else {
		h.rotation -= m
	}
	if h.rotation < 0 {
		h.rotation += 360
	}
}

// RotateCW1 rotates clockwise by one degree.
func (h *ImageHandle) RotateCW1() {
	h.rotation++
	if h.rotation >= 360 {
		h.rotation = 0
	}
}

// RotateCCW1 rotates counterclockwise by one degree.
func (h *ImageHandle) RotateCCW1() {
	h.rotation--
	if h.rotation < 0 {
		h.rotation += 360
	}
}

// FlipHorizontal mirrors the image across its vertical axis.
func (h *ImageHandle) FlipHorizontal() { h.widthMult = -h.widthMult }

// FlipVertical mirrors the image across its horizontal axis.
func (h *ImageHandle) FlipVertical() { h.heightMult = -h.heightMult }

// ResetOrientation clears rotation and flips.
func (h *ImageHandle) ResetOrientation() {
	h.rotation = 0
	h.widthMult = 1
	h.heightMult = 1
}

// Dispose releases the GPU texture. The handle must not be used
// afterwards.
func (h *ImageHandle) Dispose() {
	if h.texture != nil {
		h.texture.Deallocate()
		h.texture = nil
	}
	h.player = nil
}
