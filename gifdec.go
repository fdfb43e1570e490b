package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"time"
)

// gifMinDelay is substituted for the zero or negative delays many
// encoders write; browsers do the same.
const gifMinDelay = 100 * time.Millisecond

// decodeGIF decodes a GIF into fully composited canvas frames. The
// logical screen is maintained across frames and each frame's
// disposal method is applied after its snapshot is taken, so playback
// never has to re-run disposal logic.
func decodeGIF(data []byte) (*DecodedImage, error) {
	if !bytes.HasPrefix(data, gifMagic) {
		return nil, &FormatError{Format: FormatGIF, Detected: detectFormat(data), Reason: "missing GIF signature"}
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding gif: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	canvasRect := image.Rect(0, 0, w, h)

	// A GIF with a single frame is just a static image.
	if len(g.Image) == 1 {
		canvas := image.NewNRGBA(canvasRect)
		draw.Draw(canvas, g.Image[0].Bounds().Intersect(canvasRect), g.Image[0], g.Image[0].Bounds().Min, draw.Over)
		buf, err := toRenderable(canvas)
		if err != nil {
			return nil, err
		}
		return &DecodedImage{Static: buf}, nil
	}

	canvas := image.NewNRGBA(canvasRect)
	var previous *image.NRGBA
	frames := make([]Frame, 0, len(g.Image))

	for i, src := range g.Image {
		rect := src.Bounds().Intersect(canvasRect)
		disposal := gif.DisposalNone
		if i < len(g.Disposal) && g.Disposal[i] != 0 {
			disposal = int(g.Disposal[i])
		}
		if disposal == gif.DisposalPrevious {
			previous = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, rect, src, rect.Min, draw.Over)

		buf, err := toRenderable(canvas)
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{Pix: buf.Pix, Delay: gifFrameDelay(g, i)})

		switch disposal {
		case gif.DisposalBackground:
			clearRegion(canvas, rect)
		case gif.DisposalPrevious:
			if previous != nil {
				copy(canvas.Pix, previous.Pix)
			}
		}
	}

	return &DecodedImage{Anim: &AnimatedSequence{
		Frames: frames,
		Loops:  gifLoops(g.LoopCount),
		W:      w,
		H:      h,
	}}, nil
}

// gifFrameDelay converts the i-th delay from centiseconds, clamping
// the degenerate zero delays to gifMinDelay.
func gifFrameDelay(g *gif.GIF, i int) time.Duration {
	if i >= len(g.Delay) || g.Delay[i] <= 0 {
		return gifMinDelay
	}
	return time.Duration(g.Delay[i]) * 10 * time.Millisecond
}

// gifLoops maps the GIF loop count convention onto AnimationLoops:
// 0 means repeat forever, -1 means show each frame once, and a
// positive n means n repeats after the first pass.
func gifLoops(loopCount int) AnimationLoops {
	switch {
	case loopCount == 0:
		return InfiniteLoops()
	case loopCount < 0:
		return FiniteLoops(1)
	default:
		return FiniteLoops(loopCount + 1)
	}
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// clearRegion zeroes a rectangle of the canvas to fully transparent.
func clearRegion(canvas *image.NRGBA, rect image.Rectangle) {
	rect = rect.Intersect(canvas.Rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		off := canvas.PixOffset(rect.Min.X, y)
		row := canvas.Pix[off : off+rect.Dx()*4]
		for i := range row {
			row[i] = 0
		}
	}
}
