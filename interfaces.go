package main

import (
	"time"
)

const (
	// Overlay message display duration
	overlayMessageDuration = 2 * time.Second
)

// ZoomMode selects how the current image is scaled to the window.
type ZoomMode int

const (
	// ZoomModeFitWindow scales the image down to fit, never up in
	// windowed mode.
	ZoomModeFitWindow ZoomMode = iota
	// ZoomModeManual uses an explicit zoom level with panning.
	ZoomModeManual
)

// RenderState provides read-only access to viewer state for the
// renderer.
type RenderState interface {
	// Rendering data
	CurrentHandle() *ImageHandle
	CurrentFailed() bool
	CurrentPath() string

	// UI state
	IsFullscreen() bool
	IsShowingHelp() bool
	IsShowingInfo() bool
	GetOverlayMessage() string
	GetOverlayMessageTime() time.Time

	// Zoom and pan state
	GetZoomMode() ZoomMode
	GetZoomLevel() float64
	GetPanOffsetX() float64
	GetPanOffsetY() float64

	// Display data
	GetCurrentIndex() int
	GetTotalCount() int
	GetFontSize() float64
	GetConfigStatus() ConfigLoadResult
	GetKeybindings() map[string][]string
	GetMousebindings() map[string][]string
}

// InputActions provides action methods for the input handler.
type InputActions interface {
	// Application control
	Exit()

	// Display toggles
	ToggleHelp()
	ToggleInfo()
	ToggleFullscreen()
	FitWindowToImage()

	// Settings
	CycleSortMethod()

	// Navigation
	NavigateNext()
	NavigatePrevious()
	JumpFirst()
	JumpLast()

	// Orientation
	RotateLeft()
	RotateRight()
	RotateLeftFine()
	RotateRightFine()
	FlipHorizontal()
	FlipVertical()
	ResetOrientation()

	// Zoom and pan
	ZoomIn()
	ZoomOut()
	ZoomReset()
	ZoomFit()
	PanUp()
	PanDown()
	PanLeft()
	PanRight()
	PanByDelta(deltaX, deltaY float64) // Mouse drag pan

	// Messages
	ShowOverlayMessage(message string)

	// Common data access
	GetCurrentIndex() int
	GetTotalCount() int
}

// InputState provides read-only access to input-related state.
type InputState interface {
	GetZoomMode() ZoomMode // For drag permission checking
}
