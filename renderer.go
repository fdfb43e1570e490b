package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Common colors used in rendering
var (
	colorWhite    = color.RGBA{255, 255, 255, 255}
	colorGray     = color.RGBA{180, 180, 180, 255}
	colorYellow   = color.RGBA{255, 255, 100, 255}
	colorLightRed = color.RGBA{255, 150, 150, 255}

	// Background colors for semi-transparent overlays
	bgColorLight = color.RGBA{0, 0, 0, 128}
	bgColorDark  = color.RGBA{0, 0, 0, 200}
)

// Renderer handles all drawing operations
type Renderer struct {
	renderState RenderState

	// Placeholder for the last failed entry, rebuilt when the path
	// changes.
	failedPath string
	failedImg  *ebiten.Image
}

// NewRenderer creates a new Renderer
func NewRenderer(renderState RenderState) *Renderer {
	return &Renderer{renderState: renderState}
}

func (r *Renderer) font(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: globalFontSource, Size: size}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.renderState.CurrentFailed() {
		r.drawFailedPlaceholder(screen)
	} else if h := r.renderState.CurrentHandle(); h != nil {
		r.drawHandle(screen, h)
	}

	if r.renderState.IsShowingInfo() {
		r.drawInfoDisplay(screen)
	}
	if r.renderState.IsShowingHelp() {
		r.drawHelpOverlay(screen)
	}
	if r.renderState.GetOverlayMessage() != "" &&
		time.Since(r.renderState.GetOverlayMessageTime()) < overlayMessageDuration {
		r.drawOverlayMessage(screen)
	}
}

// drawFailedPlaceholder shows the error image for the current entry.
func (r *Renderer) drawFailedPlaceholder(screen *ebiten.Image) {
	path := r.renderState.CurrentPath()
	if r.failedImg == nil || r.failedPath != path {
		if r.failedImg != nil {
			r.failedImg.Deallocate()
		}
		r.failedImg = CreateErrorImage(400, 300, path, "unreadable or unsupported image")
		r.failedPath = path
	}
	op := &ebiten.DrawImageOptions{}
	b := r.failedImg.Bounds()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Translate(float64(w)/2-float64(b.Dx())/2, float64(h)/2-float64(b.Dy())/2)
	screen.DrawImage(r.failedImg, op)
}

// rotatedBounds returns the axis-aligned size of a w x h rectangle
// rotated by the given angle in degrees.
func rotatedBounds(w, h, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	return w*cos + h*sin, w*sin + h*cos
}

// drawHandle draws the current image with its orientation, zoom, and
// pan applied.
func (r *Renderer) drawHandle(screen *ebiten.Image, handle *ImageHandle) {
	iw, ih := handle.Size()
	fw, fh := float64(iw), float64(ih)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	angle := handle.Rotation()
	bw, bh := rotatedBounds(fw, fh, angle)

	var scale float64
	var offsetX, offsetY float64

	if r.renderState.GetZoomMode() == ZoomModeFitWindow {
		// Fit mode scales down to the window; windowed view never
		// scales small images up.
		scale = math.Min(sw/bw, sh/bh)
		if !r.renderState.IsFullscreen() && scale > 1 {
			scale = 1
		}
		offsetX = sw / 2
		offsetY = sh / 2
	} else {
		scale = r.renderState.GetZoomLevel()
		offsetX, offsetY = r.clampedPanCenter(bw*scale, bh*scale, sw, sh)
	}

	wMult, hMult := handle.FlipScale()

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-fw/2, -fh/2)
	op.GeoM.Scale(wMult, hMult)
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(handle.Texture(), op)
}

// clampedPanCenter returns the image center position for manual zoom,
// clamping the pan so the image never leaves the window entirely.
func (r *Renderer) clampedPanCenter(imgW, imgH, screenW, screenH float64) (float64, float64) {
	cx := screenW / 2
	cy := screenH / 2

	if imgW > screenW {
		pan := r.renderState.GetPanOffsetX()
		max := (imgW - screenW) / 2
		cx += math.Max(-max, math.Min(max, pan))
	}
	if imgH > screenH {
		pan := r.renderState.GetPanOffsetY()
		max := (imgH - screenH) / 2
		cy += math.Max(-max, math.Min(max, pan))
	}
	return cx, cy
}

// buildInfoString summarizes the current entry for the info display.
func (r *Renderer) buildInfoString() string {
	idx := r.renderState.GetCurrentIndex()
	total := r.renderState.GetTotalCount()
	parts := []string{fmt.Sprintf("%d / %d", idx+1, total)}

	if handle := r.renderState.CurrentHandle(); handle != nil {
		w, h := handle.Size()
		parts = append(parts, fmt.Sprintf("%dx%d", w, h))
		if angle := handle.Rotation(); angle != 0 {
			parts = append(parts, fmt.Sprintf("%.0f deg", angle))
		}
		if handle.Animated() {
			parts = append(parts, "playing")
		}
	}

	if r.renderState.GetZoomMode() == ZoomModeManual {
		parts = append(parts, fmt.Sprintf("%.0f%%", r.renderState.GetZoomLevel()*100))
	}

	return strings.Join(parts, "  ")
}

func (r *Renderer) drawInfoDisplay(screen *ebiten.Image) {
	infoFont := r.font(r.renderState.GetFontSize())
	infoText := r.buildInfoString()

	textWidth, textHeight := text.Measure(infoText, infoFont, 0)

	padding := 10.0
	textX := float64(screen.Bounds().Dx()) - textWidth - padding
	textY := float64(screen.Bounds().Dy()) - textHeight - padding

	bgPadding := 5.0
	DrawFilledRect(screen, textX-bgPadding, textY-bgPadding,
		textWidth+bgPadding*2, textHeight+bgPadding*2, bgColorLight)
	DrawText(screen, infoText, infoFont, textX, textY, colorWhite)

	// Surface config problems where the user will see them.
	status := r.renderState.GetConfigStatus()
	if len(status.Warnings) > 0 {
		warnText := "config: " + status.Warnings[0]
		warnW, _ := text.Measure(warnText, infoFont, 0)
		DrawText(screen, warnText, infoFont,
			float64(screen.Bounds().Dx())-warnW-padding, textY-textHeight-bgPadding, colorLightRed)
	}
}

// bindingLines builds one help line per action, combining keyboard and
// mouse bindings.
func (r *Renderer) bindingLines() []string {
	keybindings := r.renderState.GetKeybindings()
	mousebindings := r.renderState.GetMousebindings()
	descriptions := GetActionDescriptions()

	actionSet := make(map[string]bool)
	for action := range keybindings {
		actionSet[action] = true
	}
	for action := range mousebindings {
		actionSet[action] = true
	}
	actions := make([]string, 0, len(actionSet))
	for action := range actionSet {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	lines := make([]string, 0, len(actions))
	for _, action := range actions {
		bindings := append([]string{}, keybindings[action]...)
		bindings = append(bindings, mousebindings[action]...)
		if len(bindings) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-24s %s", strings.Join(bindings, ", "), descriptions[action]))
	}
	return lines
}

func (r *Renderer) drawHelpOverlay(screen *ebiten.Image) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	DrawFilledRect(screen, 0, 0, sw, sh, bgColorDark)

	fontSize := r.renderState.GetFontSize()
	helpFont := r.font(fontSize)
	lines := r.bindingLines()

	// Shrink the font until the listing fits the window.
	lineHeight := fontSize * 1.3
	for fontSize > 10 && lineHeight*float64(len(lines)+2) > sh {
		fontSize -= 2
		helpFont = r.font(fontSize)
		lineHeight = fontSize * 1.3
	}

	x := 20.0
	y := 20.0
	DrawText(screen, "Bindings", helpFont, x, y, colorYellow)
	y += lineHeight * 1.5
	for _, line := range lines {
		DrawText(screen, line, helpFont, x, y, colorGray)
		y += lineHeight
	}
}

func (r *Renderer) drawOverlayMessage(screen *ebiten.Image) {
	messageFont := r.font(r.renderState.GetFontSize())
	message := r.renderState.GetOverlayMessage()

	textWidth, textHeight := text.Measure(message, messageFont, 0)

	padding := 20.0
	boxWidth := textWidth + padding*2
	boxHeight := textHeight + padding*2
	boxX := (float64(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := (float64(screen.Bounds().Dy()) - boxHeight) / 2

	DrawFilledRect(screen, boxX, boxY, boxWidth, boxHeight, bgColorDark)
	DrawText(screen, message, messageFont, boxX+padding, boxY+padding, colorWhite)
}
