package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestExpandInPlace(t *testing.T) {
	pix := []byte{10, 20, 30}
	out := expandInPlace(pix, 3, 1, 4, func(dst, src []byte) {
		v := src[0]
		dst[0], dst[1], dst[2], dst[3] = v, v, v, 0xFF
	})

	want := []byte{
		10, 10, 10, 0xFF,
		20, 20, 20, 0xFF,
		30, 30, 30, 0xFF,
	}
	if !bytes.Equal(out, want) {
		t.Errorf("expandInPlace = %v, want %v", out, want)
	}
}

func TestExpandInPlaceSameWidth(t *testing.T) {
	pix := []byte{1, 2, 3, 4}
	out := expandInPlace(pix, 1, 4, 4, nil)
	if !bytes.Equal(out, pix) {
		t.Errorf("same-width expand changed data: %v", out)
	}
}

func TestPremultiply(t *testing.T) {
	pix := []byte{
		0xFF, 0x80, 0x00, 0xFF, // opaque, untouched
		0xFF, 0xFF, 0xFF, 0x80, // half transparent white
		0x40, 0x80, 0xC0, 0x00, // fully transparent
	}
	premultiply(pix)

	want := []byte{
		0xFF, 0x80, 0x00, 0xFF,
		0x80, 0x80, 0x80, 0x80,
		0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(pix, want) {
		t.Errorf("premultiply = %v, want %v", pix, want)
	}
}

func TestPackRowsDropsStridePadding(t *testing.T) {
	// Two 2px rows with 2 bytes of padding each.
	src := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 99, 99,
		9, 10, 11, 12, 13, 14, 15, 16, 99, 99,
	}
	packed := packRows(src, 10, 0, 0, 2, 2, 4)

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if !bytes.Equal(packed, want) {
		t.Errorf("packRows = %v, want %v", packed, want)
	}
}

func TestToRenderableNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, A: 0x80})

	buf, err := toRenderable(img)
	if err != nil {
		t.Fatalf("toRenderable: %v", err)
	}
	if buf.W != 2 || buf.H != 1 {
		t.Fatalf("size = %dx%d, want 2x1", buf.W, buf.H)
	}
	want := []byte{0xFF, 0, 0, 0xFF, 0x80, 0, 0, 0x80}
	if !bytes.Equal(buf.Pix, want) {
		t.Errorf("Pix = %v, want %v", buf.Pix, want)
	}
}

func TestToRenderableGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 2))
	img.SetGray(0, 0, color.Gray{Y: 0x10})
	img.SetGray(0, 1, color.Gray{Y: 0xF0})

	buf, err := toRenderable(img)
	if err != nil {
		t.Fatalf("toRenderable: %v", err)
	}
	want := []byte{0x10, 0x10, 0x10, 0xFF, 0xF0, 0xF0, 0xF0, 0xFF}
	if !bytes.Equal(buf.Pix, want) {
		t.Errorf("Pix = %v, want %v", buf.Pix, want)
	}
}

func TestToRenderablePaletted(t *testing.T) {
	pal := color.Palette{
		color.NRGBA{R: 0xFF, A: 0xFF},
		color.NRGBA{G: 0xFF, A: 0xFF},
	}
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	img.SetColorIndex(0, 0, 1)
	img.SetColorIndex(1, 0, 0)

	buf, err := toRenderable(img)
	if err != nil {
		t.Fatalf("toRenderable: %v", err)
	}
	want := []byte{0, 0xFF, 0, 0xFF, 0xFF, 0, 0, 0xFF}
	if !bytes.Equal(buf.Pix, want) {
		t.Errorf("Pix = %v, want %v", buf.Pix, want)
	}
}

func TestToRenderableSubImage(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.SetRGBA(2, 2, color.RGBA{R: 0xAA, A: 0xFF})
	sub := base.SubImage(image.Rect(2, 2, 3, 3)).(*image.RGBA)

	buf, err := toRenderable(sub)
	if err != nil {
		t.Fatalf("toRenderable: %v", err)
	}
	if buf.W != 1 || buf.H != 1 {
		t.Fatalf("size = %dx%d, want 1x1", buf.W, buf.H)
	}
	want := []byte{0xAA, 0, 0, 0xFF}
	if !bytes.Equal(buf.Pix, want) {
		t.Errorf("Pix = %v, want %v", buf.Pix, want)
	}
}

func TestToRenderableUnsupportedKinds(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"Gray16", image.NewGray16(image.Rect(0, 0, 1, 1))},
		{"Alpha", image.NewAlpha(image.Rect(0, 0, 1, 1))},
		{"Alpha16", image.NewAlpha16(image.Rect(0, 0, 1, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toRenderable(tt.img)
			var unsup *UnsupportedColorError
			if !errors.As(err, &unsup) {
				t.Fatalf("err = %v, want *UnsupportedColorError", err)
			}
		})
	}
}

func TestToRenderableYCbCr(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)

	buf, err := toRenderable(img)
	if err != nil {
		t.Fatalf("toRenderable: %v", err)
	}
	if len(buf.Pix) != 2*2*4 {
		t.Errorf("len(Pix) = %d, want 16", len(buf.Pix))
	}
}

func TestToRenderableEmptyBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := toRenderable(img); err == nil {
		t.Error("expected error for empty bounds")
	}
}
