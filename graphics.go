package main

import (
	"bytes"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Global font source shared by the renderer and placeholder images.
var globalFontSource *text.GoTextFaceSource

// InitGraphics initializes the global font source for text rendering
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	globalFontSource = s
	return nil
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

// drawBorder frames an image with a solid border of the given
// thickness.
func drawBorder(img *ebiten.Image, thickness float64, c color.RGBA) {
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	DrawFilledRect(img, 0, 0, w, thickness, c)
	DrawFilledRect(img, 0, h-thickness, w, thickness, c)
	DrawFilledRect(img, 0, 0, thickness, h, c)
	DrawFilledRect(img, w-thickness, 0, thickness, h, c)
}

// CreateErrorImage builds the placeholder shown for an entry that
// failed to decode, carrying the file name and the failure reason.
func CreateErrorImage(width, height int, filename, errorMsg string) *ebiten.Image {
	if width <= 0 || height <= 0 {
		width, height = 400, 300
	}

	errorImg := ebiten.NewImage(width, height)
	errorImg.Fill(color.RGBA{120, 30, 30, 255})
	white := color.RGBA{255, 255, 255, 255}
	drawBorder(errorImg, 3, white)

	if globalFontSource == nil {
		// No font available, the red frame alone has to do.
		return errorImg
	}

	errorFont := &text.GoTextFace{
		Source: globalFontSource,
		Size:   20.0,
	}

	fileText := "File: " + filepath.Base(filename)
	reasonText := "Reason: " + errorMsg

	// Truncate long text to fit within image bounds.
	maxChars := (width - 20) / 10
	if len(fileText) > maxChars && maxChars > 3 {
		fileText = fileText[:maxChars-3] + "..."
	}
	if len(reasonText) > maxChars && maxChars > 3 {
		reasonText = reasonText[:maxChars-3] + "..."
	}

	DrawText(errorImg, "Could not load image", errorFont, 10, 30, white)
	DrawText(errorImg, fileText, errorFont, 10, 60, white)
	DrawText(errorImg, reasonText, errorFont, 10, 90, white)

	return errorImg
}
