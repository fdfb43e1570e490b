package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Zoom and pan tuning
const (
	minZoomLevel = 0.05
	maxZoomLevel = 32.0
	panStep      = 50.0
)

// Game owns all viewer state and implements ebiten.Game plus the
// RenderState, InputActions, and InputState interfaces consumed by the
// renderer and input handler.
type Game struct {
	gallery      *Gallery
	config       Config
	configStatus ConfigLoadResult
	input        *InputHandler
	renderer     *Renderer
	keybindings  *KeybindingManager
	mousebinds   *MousebindingManager
	instance     *instanceMarker

	fullscreen bool
	savedWinW  int
	savedWinH  int

	showHelp bool
	showInfo bool

	zoomMode  ZoomMode
	zoomLevel float64
	panX      float64
	panY      float64

	overlayMessage string
	overlayTime    time.Time

	lastFrame time.Time
}

// NewGame wires the gallery, bindings, input handler, and renderer
// together from a loaded config.
func NewGame(gallery *Gallery, status ConfigLoadResult, instance *instanceMarker) *Game {
	g := &Game{
		gallery:      gallery,
		config:       status.Config,
		configStatus: status,
		instance:     instance,
		fullscreen:   status.Config.Fullscreen,
		zoomLevel:    1.0,
	}
	g.keybindings = NewKeybindingManager(g.config.Keybindings)
	g.mousebinds = NewMousebindingManager(g.config.Mousebindings, g.config.Mouse)
	g.input = NewInputHandler(g, g, g.keybindings, g.mousebinds)
	g.renderer = NewRenderer(g)
	gallery.OnNavigate(g.onNavigate)
	return g
}

// onNavigate runs whenever the gallery's current entry changes.
func (g *Game) onNavigate() {
	g.refreshWindowTitle()
	if g.config.FitWindowToImage && !g.fullscreen {
		g.FitWindowToImage()
	}
}

func (g *Game) refreshWindowTitle() {
	path := g.gallery.CurrentPath()
	if path == "" {
		ebiten.SetWindowTitle("vix")
		return
	}
	ebiten.SetWindowTitle(fmt.Sprintf("vix [%d of %d] - %s",
		g.gallery.Index()+1, g.gallery.Len(), filepath.Base(path)))
}

// Update advances playback by the wall-clock time since the previous
// frame and processes input.
func (g *Game) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame)
	}
	g.lastFrame = now

	g.input.HandleInput()

	if h := g.gallery.Current(); h != nil {
		h.Update(dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.config.backgroundColor())
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// saveCurrentWindowSize stores the windowed size in the config before
// exit, preferring the pre-fullscreen size while fullscreen.
func (g *Game) saveCurrentWindowSize() {
	if g.fullscreen {
		if g.savedWinW > 0 && g.savedWinH > 0 {
			g.config.WindowWidth = g.savedWinW
			g.config.WindowHeight = g.savedWinH
		}
	} else {
		g.config.WindowWidth, g.config.WindowHeight = ebiten.WindowSize()
	}
	g.config.Fullscreen = g.fullscreen
}

// InputActions implementation

// Exit saves state and quits. The config is only written by the last
// live instance so parallel viewers do not clobber each other.
func (g *Game) Exit() {
	g.saveCurrentWindowSize()
	if g.instance == nil || !g.instance.OthersRunning() {
		saveConfig(g.config)
	}
	if g.instance != nil {
		g.instance.Release()
	}
	g.gallery.Dispose()
	os.Exit(0)
}

func (g *Game) ToggleHelp() { g.showHelp = !g.showHelp }
func (g *Game) ToggleInfo() { g.showInfo = !g.showInfo }

func (g *Game) ToggleFullscreen() {
	g.fullscreen = !g.fullscreen
	if g.fullscreen {
		g.savedWinW, g.savedWinH = ebiten.WindowSize()
		ebiten.SetFullscreen(true)
	} else {
		ebiten.SetFullscreen(false)
		if g.savedWinW > 0 && g.savedWinH > 0 {
			ebiten.SetWindowSize(g.savedWinW, g.savedWinH)
		}
	}
}

// FitWindowToImage resizes the window to the current image's rotated
// bounds, clamped to the minimum window size.
func (g *Game) FitWindowToImage() {
	handle := g.gallery.Current()
	if handle == nil || g.fullscreen {
		return
	}
	w, h := handle.Size()
	bw, bh := rotatedBounds(float64(w), float64(h), handle.Rotation())
	winW := int(math.Max(float64(minWidth), bw))
	winH := int(math.Max(float64(minHeight), bh))
	ebiten.SetWindowSize(winW, winH)
}

func (g *Game) CycleSortMethod() {
	g.config.SortMethod = (g.config.SortMethod + 1) % 3
	strategy := GetSortStrategy(g.config.SortMethod)
	g.gallery.SetStrategy(strategy)
	g.ShowOverlayMessage("Sort: " + strategy.Name())
}

func (g *Game) NavigateNext()     { g.gallery.Advance() }
func (g *Game) NavigatePrevious() { g.gallery.Retreat() }
func (g *Game) JumpFirst()        { g.gallery.First() }
func (g *Game) JumpLast()         { g.gallery.Last() }

// withHandle runs fn on the current image, ignoring failed or empty
// entries.
func (g *Game) withHandle(fn func(*ImageHandle)) {
	if h := g.gallery.Current(); h != nil {
		fn(h)
	}
}

func (g *Game) RotateLeft()      { g.withHandle((*ImageHandle).RotateLeft) }
func (g *Game) RotateRight()     { g.withHandle((*ImageHandle).RotateRight) }
func (g *Game) RotateLeftFine()  { g.withHandle((*ImageHandle).RotateCCW1) }
func (g *Game) RotateRightFine() { g.withHandle((*ImageHandle).RotateCW1) }
func (g *Game) FlipHorizontal()  { g.withHandle((*ImageHandle).FlipHorizontal) }
func (g *Game) FlipVertical()    { g.withHandle((*ImageHandle).FlipVertical) }

func (g *Game) ResetOrientation() {
	g.withHandle((*ImageHandle).ResetOrientation)
}

func (g *Game) ZoomIn() {
	g.enterManualZoom()
	g.zoomLevel = math.Min(maxZoomLevel, g.zoomLevel*g.config.ZoomStep)
}

func (g *Game) ZoomOut() {
	g.enterManualZoom()
	g.zoomLevel = math.Max(minZoomLevel, g.zoomLevel/g.config.ZoomStep)
}

func (g *Game) ZoomReset() {
	g.zoomMode = ZoomModeManual
	g.zoomLevel = 1.0
	g.panX, g.panY = 0, 0
}

func (g *Game) ZoomFit() {
	g.zoomMode = ZoomModeFitWindow
	g.panX, g.panY = 0, 0
}

// enterManualZoom switches from fit mode to manual zoom, seeding the
// zoom level with the current fit scale so the first step is smooth.
func (g *Game) enterManualZoom() {
	if g.zoomMode == ZoomModeManual {
		return
	}
	g.zoomMode = ZoomModeManual
	g.panX, g.panY = 0, 0
	if handle := g.gallery.Current(); handle != nil {
		w, h := handle.Size()
		bw, bh := rotatedBounds(float64(w), float64(h), handle.Rotation())
		sw, sh := ebiten.WindowSize()
		fit := math.Min(float64(sw)/bw, float64(sh)/bh)
		if g.fullscreen || fit < 1 {
			g.zoomLevel = fit
		} else {
			g.zoomLevel = 1
		}
	}
}

func (g *Game) PanUp()    { g.panY += panStep }
func (g *Game) PanDown()  { g.panY -= panStep }
func (g *Game) PanLeft()  { g.panX += panStep }
func (g *Game) PanRight() { g.panX -= panStep }

func (g *Game) PanByDelta(deltaX, deltaY float64) {
	g.panX += deltaX
	g.panY += deltaY
}

func (g *Game) ShowOverlayMessage(message string) {
	g.overlayMessage = message
	g.overlayTime = time.Now()
	debugLog("overlay: %s", message)
}

func (g *Game) GetCurrentIndex() int { return g.gallery.Index() }
func (g *Game) GetTotalCount() int   { return g.gallery.Len() }

// RenderState implementation

func (g *Game) CurrentHandle() *ImageHandle { return g.gallery.Current() }
func (g *Game) CurrentFailed() bool         { return g.gallery.CurrentFailed() }
func (g *Game) CurrentPath() string         { return g.gallery.CurrentPath() }

func (g *Game) IsFullscreen() bool  { return g.fullscreen }
func (g *Game) IsShowingHelp() bool { return g.showHelp }
func (g *Game) IsShowingInfo() bool { return g.showInfo }

func (g *Game) GetOverlayMessage() string        { return g.overlayMessage }
func (g *Game) GetOverlayMessageTime() time.Time { return g.overlayTime }

func (g *Game) GetZoomMode() ZoomMode  { return g.zoomMode }
func (g *Game) GetZoomLevel() float64  { return g.zoomLevel }
func (g *Game) GetPanOffsetX() float64 { return g.panX }
func (g *Game) GetPanOffsetY() float64 { return g.panY }

func (g *Game) GetFontSize() float64                  { return g.config.HelpFontSize }
func (g *Game) GetConfigStatus() ConfigLoadResult     { return g.configStatus }
func (g *Game) GetKeybindings() map[string][]string   { return g.keybindings.GetKeybindings() }
func (g *Game) GetMousebindings() map[string][]string { return g.mousebinds.GetMousebindings() }

var _ ebiten.Game = (*Game)(nil)
var _ InputActions = (*Game)(nil)
var _ RenderState = (*Game)(nil)
