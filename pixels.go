package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// PixelBuffer is the uniform renderable representation every decoder
// produces: tightly packed premultiplied-alpha RGBA bytes, 4 per
// pixel, row-major with no padding. This is exactly the layout
// ebiten.Image.WritePixels consumes, so animation frames can be pushed
// to an existing texture without conversion.
type PixelBuffer struct {
	Pix []byte
	W   int
	H   int
}

// NewTexture uploads the buffer into a fresh GPU texture.
func (b *PixelBuffer) NewTexture() *ebiten.Image {
	tex := ebiten.NewImage(b.W, b.H)
	tex.WritePixels(b.Pix)
	return tex
}

// expandInPlace grows a tightly packed buffer of n pixels from `from`
// bytes per pixel to `to` bytes per pixel using a single reallocation.
// Pixels are converted back to front so a source pixel is always read
// before any destination write can reach it; the grown tail is never
// read before being written.
func expandInPlace(pix []byte, n, from, to int, conv func(dst, src []byte)) []byte {
	if to < from {
		panic("expandInPlace: shrinking layout")
	}
	if to == from {
		return pix
	}
	grown := n*to - len(pix)
	pix = append(pix, make([]byte, grown)...)
	for i := n - 1; i >= 0; i-- {
		conv(pix[i*to:i*to+to], pix[i*from:i*from+from])
	}
	return pix
}

// premultiply converts packed non-premultiplied RGBA bytes to
// premultiplied RGBA in place.
func premultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint32(pix[i+3])
		if a == 0xFF {
			continue
		}
		pix[i+0] = uint8(uint32(pix[i+0]) * a / 0xFF)
		pix[i+1] = uint8(uint32(pix[i+1]) * a / 0xFF)
		pix[i+2] = uint8(uint32(pix[i+2]) * a / 0xFF)
	}
}

// packRows copies an image's pixel rows into a tightly packed buffer,
// dropping any stride padding or sub-image offset.
func packRows(pix []byte, stride, minX, minY, w, h, bpp int) []byte {
	packed := make([]byte, 0, w*h*bpp)
	for y := 0; y < h; y++ {
		off := (minY+y)*stride + minX*bpp
		packed = append(packed, pix[off:off+w*bpp]...)
	}
	return packed
}

// toRenderable converts a decoded image into the uniform premultiplied
// RGBA representation. Narrow packed layouts are widened in place with
// expandInPlace; layouts the renderer cannot represent return
// *UnsupportedColorError instead of panicking.
func toRenderable(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty image bounds %v", bounds)
	}

	switch src := img.(type) {
	case *image.RGBA:
		// Already premultiplied RGBA.
		pix := packRows(src.Pix, src.Stride, bounds.Min.X-src.Rect.Min.X, bounds.Min.Y-src.Rect.Min.Y, w, h, 4)
		return &PixelBuffer{Pix: pix, W: w, H: h}, nil

	case *image.NRGBA:
		pix := packRows(src.Pix, src.Stride, bounds.Min.X-src.Rect.Min.X, bounds.Min.Y-src.Rect.Min.Y, w, h, 4)
		premultiply(pix)
		return &PixelBuffer{Pix: pix, W: w, H: h}, nil

	case *image.Gray:
		pix := packRows(src.Pix, src.Stride, bounds.Min.X-src.Rect.Min.X, bounds.Min.Y-src.Rect.Min.Y, w, h, 1)
		pix = expandInPlace(pix, w*h, 1, 4, func(dst, s []byte) {
			v := s[0]
			dst[0], dst[1], dst[2], dst[3] = v, v, v, 0xFF
		})
		return &PixelBuffer{Pix: pix, W: w, H: h}, nil

	case *image.Paletted:
		if len(src.Palette) > 256 {
			return nil, &UnsupportedColorError{ColorKind: fmt.Sprintf("indexed with %d entries", len(src.Palette))}
		}
		var lut [256][4]byte
		for i, c := range src.Palette {
			r, g, b, a := c.RGBA()
			lut[i] = [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		}
		pix := packRows(src.Pix, src.Stride, bounds.Min.X-src.Rect.Min.X, bounds.Min.Y-src.Rect.Min.Y, w, h, 1)
		pix = expandInPlace(pix, w*h, 1, 4, func(dst, s []byte) {
			copy(dst, lut[s[0]][:])
		})
		return &PixelBuffer{Pix: pix, W: w, H: h}, nil

	case *image.NRGBA64:
		// 16-bit RGBA downconverts losslessly enough for display.
		pix := make([]byte, 0, w*h*4)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := src.NRGBA64At(x, y)
				pix = append(pix, uint8(c.R>>8), uint8(c.G>>8), uint8(c.B>>8), uint8(c.A>>8))
			}
		}
		premultiply(pix)
		return &PixelBuffer{Pix: pix, W: w, H: h}, nil

	case *image.RGBA64:
		pix := make([]byte, 0, w*h*4)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := src.RGBA64At(x, y)
				pix = append(pix, uint8(c.R>>8), uint8(c.G>>8), uint8(c.B>>8), uint8(c.A>>8))
			}
		}
		return &PixelBuffer{Pix: pix, W: w, H: h}, nil

	case *image.Gray16:
		return nil, &UnsupportedColorError{ColorKind: "16-bit grayscale (L16)"}

	case *image.Alpha:
		return nil, &UnsupportedColorError{ColorKind: "alpha-only (A8)"}

	case *image.Alpha16:
		return nil, &UnsupportedColorError{ColorKind: "alpha-only (A16)"}

	case *image.YCbCr, *image.CMYK:
		return renderableSlowPath(img)

	default:
		// Unknown image implementation; go through the generic color
		// model. Custom float or >16-bit models still produce usable
		// 8-bit output here, matching the display surface's depth.
		return renderableSlowPath(img)
	}
}

// renderableSlowPath converts through the image's own color model one
// pixel at a time. Correct for any image.Image, just slower than the
// packed fast paths.
func renderableSlowPath(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 0, w*h*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
		}
	}
	return &PixelBuffer{Pix: pix, W: w, H: h}, nil
}

// colorKind names an image's pixel layout for logs and errors.
func colorKind(img image.Image) string {
	switch img.(type) {
	case *image.RGBA:
		return "RGBA8"
	case *image.NRGBA:
		return "NRGBA8"
	case *image.Gray:
		return "L8"
	case *image.Gray16:
		return "L16"
	case *image.Paletted:
		return "indexed"
	case *image.NRGBA64:
		return "NRGBA16"
	case *image.RGBA64:
		return "RGBA16"
	case *image.YCbCr:
		return "YCbCr"
	case *image.CMYK:
		return "CMYK"
	default:
		return fmt.Sprintf("%T", img)
	}
}
