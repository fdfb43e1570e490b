package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/kettek/apng"
)

// decodePNG decodes a PNG or APNG. A file is treated as animated only
// when it carries actual animation frames; the default image (an IDAT
// that is not part of the animation) is skipped during playback, and a
// single-frame file degrades to a static image.
func decodePNG(data []byte) (*DecodedImage, error) {
	if !bytes.HasPrefix(data, pngMagic) {
		return nil, &FormatError{Format: FormatPNG, Detected: detectFormat(data), Reason: "missing PNG signature"}
	}
	a, err := apng.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}
	if len(a.Frames) == 0 {
		return nil, fmt.Errorf("png has no image data")
	}

	var anim []apng.Frame
	for _, f := range a.Frames {
		if !f.IsDefault {
			anim = append(anim, f)
		}
	}

	if len(anim) <= 1 {
		img := a.Frames[0].Image
		if len(anim) == 1 {
			img = anim[0].Image
		}
		buf, err := toRenderable(img)
		if err != nil {
			return nil, err
		}
		return &DecodedImage{Static: buf}, nil
	}

	for _, f := range anim {
		switch f.Image.(type) {
		case *image.Gray16, *image.RGBA64, *image.NRGBA64:
			return nil, &UnsupportedColorError{ColorKind: fmt.Sprintf("16-bit animated PNG (%s)", colorKind(f.Image))}
		}
	}

	// The first animation frame always spans the full canvas.
	first := anim[0].Image.Bounds()
	w, h := first.Dx(), first.Dy()
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	var previous *image.NRGBA
	frames := make([]Frame, 0, len(anim))

	for i, f := range anim {
		fb := f.Image.Bounds()
		region := image.Rect(f.XOffset, f.YOffset, f.XOffset+fb.Dx(), f.YOffset+fb.Dy()).Intersect(canvas.Rect)
		dispose := f.DisposeOp
		if i == 0 && dispose == apng.DISPOSE_OP_PREVIOUS {
			dispose = apng.DISPOSE_OP_BACKGROUND
		}
		if dispose == apng.DISPOSE_OP_PREVIOUS {
			previous = cloneNRGBA(canvas)
		}

		src := nrgbaFrame(f.Image)
		if f.BlendOp == apng.BLEND_OP_SOURCE {
			blendSource(canvas, region, src)
		} else {
			blendOver(canvas, region, src)
		}

		buf, err := toRenderable(canvas)
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{Pix: buf.Pix, Delay: apngFrameDelay(f)})

		switch dispose {
		case apng.DISPOSE_OP_BACKGROUND:
			if i == 0 {
				clearRegion(canvas, canvas.Rect)
			} else {
				clearRegion(canvas, region)
			}
		case apng.DISPOSE_OP_PREVIOUS:
			copyRegion(canvas, previous, region)
		}
	}

	return &DecodedImage{Anim: &AnimatedSequence{
		Frames: frames,
		Loops:  apngLoops(a.LoopCount),
		W:      w,
		H:      h,
	}}, nil
}

// apngFrameDelay converts an fcTL delay fraction to a duration. A zero
// denominator reads as 1/100ths of a second per the format.
func apngFrameDelay(f apng.Frame) time.Duration {
	den := f.DelayDenominator
	if den == 0 {
		den = 100
	}
	return time.Duration(f.DelayNumerator) * time.Second / time.Duration(den)
}

// apngLoops maps acTL num_plays: zero plays forever.
func apngLoops(numPlays uint) AnimationLoops {
	if numPlays == 0 {
		return InfiniteLoops()
	}
	return FiniteLoops(int(numPlays))
}

// nrgbaFrame returns the frame as straight-alpha NRGBA without going
// through a premultiplied intermediate.
func nrgbaFrame(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
		}
	}
	return dst
}

// blendSource replaces the region's pixels with the frame's, alpha
// included.
func blendSource(canvas *image.NRGBA, region image.Rectangle, src *image.NRGBA) {
	for y := 0; y < region.Dy(); y++ {
		dOff := canvas.PixOffset(region.Min.X, region.Min.Y+y)
		sOff := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		copy(canvas.Pix[dOff:dOff+region.Dx()*4], src.Pix[sOff:sOff+region.Dx()*4])
	}
}

// blendOver alpha-composites the frame onto the region in straight
// alpha.
func blendOver(canvas *image.NRGBA, region image.Rectangle, src *image.NRGBA) {
	for y := 0; y < region.Dy(); y++ {
		dOff := canvas.PixOffset(region.Min.X, region.Min.Y+y)
		sOff := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		for x := 0; x < region.Dx(); x++ {
			d := canvas.Pix[dOff+x*4 : dOff+x*4+4]
			s := src.Pix[sOff+x*4 : sOff+x*4+4]
			sa := uint32(s[3])
			if sa == 0xFF {
				copy(d, s)
				continue
			}
			if sa == 0 {
				continue
			}
			da := uint32(d[3])
			outA := sa*0xFF + da*(0xFF-sa)
			if outA == 0 {
				d[0], d[1], d[2], d[3] = 0, 0, 0, 0
				continue
			}
			for c := 0; c < 3; c++ {
				d[c] = uint8((uint32(s[c])*sa*0xFF + uint32(d[c])*da*(0xFF-sa)) / outA)
			}
			d[3] = uint8(outA / 0xFF)
		}
	}
}

// copyRegion restores a rectangle of the canvas from a snapshot taken
// over the same coordinate space.
func copyRegion(dst, src *image.NRGBA, region image.Rectangle) {
	if src == nil {
		return
	}
	for y := region.Min.Y; y < region.Max.Y; y++ {
		dOff := dst.PixOffset(region.Min.X, y)
		sOff := src.PixOffset(region.Min.X, y)
		copy(dst.Pix[dOff:dOff+region.Dx()*4], src.Pix[sOff:sOff+region.Dx()*4])
	}
}
