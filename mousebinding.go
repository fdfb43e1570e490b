package main

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	WheelSensitivity float64 `json:"wheel_sensitivity"`
	DoubleClickTime  int     `json:"double_click_time"` // milliseconds
	DragThreshold    int     `json:"drag_threshold"`    // pixels
	EnableMouse      bool    `json:"enable_mouse"`
	WheelInverted    bool    `json:"wheel_inverted"`
	EnableDragPan    bool    `json:"enable_drag_pan"`
	DragSensitivity  float64 `json:"drag_sensitivity"`
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		WheelSensitivity: 1.0,
		DoubleClickTime:  300,
		DragThreshold:    5,
		EnableMouse:      true,
		WheelInverted:    false,
		EnableDragPan:    true,
		DragSensitivity:  1.0,
	}
}

// DoubleClickTracker tracks double-click state
type DoubleClickTracker struct {
	lastClickTime   time.Time
	lastClickButton ebiten.MouseButton
	clickCount      int
}

// dragTracker tracks an in-progress left-button drag for panning.
type dragTracker struct {
	active     bool
	dragging   bool // passed the threshold
	lastX      int
	lastY      int
	startX     int
	startY     int
}

// MouseCombination represents a mouse action with optional modifiers
type MouseCombination struct {
	Button        ebiten.MouseButton
	IsWheel       bool
	WheelDeltaX   float64
	WheelDeltaY   float64
	IsDoubleClick bool
	Shift         bool
	Ctrl          bool
	Alt           bool
}

// MousebindingManager handles dynamic mouse binding processing
type MousebindingManager struct {
	mousebindings      map[string][]string
	mouseMapping       map[string]ebiten.MouseButton
	settings           MouseSettings
	doubleClickTracker DoubleClickTracker
	drag               dragTracker
}

// NewMousebindingManager creates a new MousebindingManager
func NewMousebindingManager(mousebindings map[string][]string, settings MouseSettings) *MousebindingManager {
	return &MousebindingManager{
		mousebindings: mousebindings,
		mouseMapping:  getMouseMapping(),
		settings:      settings,
		doubleClickTracker: DoubleClickTracker{
			lastClickTime: time.Now(),
		},
	}
}

// getMouseMapping returns a mapping from string mouse actions to Ebiten mouse buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"LeftClick":   ebiten.MouseButtonLeft,
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
		"Back":        ebiten.MouseButton3,
		"Forward":     ebiten.MouseButton4,
	}
}

// parseMouseString parses a mouse string like "Shift+LeftClick" or
// "WheelUp" into a MouseCombination
func (mm *MousebindingManager) parseMouseString(mouseStr string) (*MouseCombination, bool) {
	parts := strings.Split(mouseStr, "+")
	if len(parts) == 0 {
		return nil, false
	}

	combination := &MouseCombination{}
	actionName := parts[len(parts)-1]

	switch {
	case strings.HasPrefix(actionName, "Wheel"):
		combination.IsWheel = true
		switch actionName {
		case "WheelUp":
			combination.WheelDeltaY = 1.0
		case "WheelDown":
			combination.WheelDeltaY = -1.0
		case "WheelLeft":
			combination.WheelDeltaX = -1.0
		case "WheelRight":
			combination.WheelDeltaX = 1.0
		default:
			return nil, false
		}
	case strings.HasPrefix(actionName, "Double"):
		combination.IsDoubleClick = true
		button, exists := mm.mouseMapping[strings.TrimPrefix(actionName, "Double")]
		if !exists {
			return nil, false
		}
		combination.Button = button
	default:
		button, exists := mm.mouseMapping[actionName]
		if !exists {
			return nil, false
		}
		combination.Button = button
	}

	for i := 0; i < len(parts)-1; i++ {
		switch strings.ToLower(parts[i]) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		}
	}

	return combination, true
}

// isMouseActionTriggered checks if a mouse combination is currently
// being triggered with exactly its modifiers held.
func (mm *MousebindingManager) isMouseActionTriggered(combination *MouseCombination) bool {
	if !mm.settings.EnableMouse {
		return false
	}

	if combination.Shift != ebiten.IsKeyPressed(ebiten.KeyShift) {
		return false
	}
	if combination.Ctrl != ebiten.IsKeyPressed(ebiten.KeyControl) {
		return false
	}
	if combination.Alt != ebiten.IsKeyPressed(ebiten.KeyAlt) {
		return false
	}

	if combination.IsWheel {
		wheelX, wheelY := ebiten.Wheel()
		if mm.settings.WheelInverted {
			wheelY = -wheelY
		}
		wheelX *= mm.settings.WheelSensitivity
		wheelY *= mm.settings.WheelSensitivity

		if combination.WheelDeltaX != 0 {
			return (combination.WheelDeltaX > 0 && wheelX > 0) || (combination.WheelDeltaX < 0 && wheelX < 0)
		}
		if combination.WheelDeltaY != 0 {
			return (combination.WheelDeltaY > 0 && wheelY > 0) || (combination.WheelDeltaY < 0 && wheelY < 0)
		}
		return false
	}

	if combination.IsDoubleClick {
		return mm.checkDoubleClick(combination.Button)
	}

	return inpututil.IsMouseButtonJustPressed(combination.Button)
}

// checkDoubleClick checks if a double-click occurred for the given button
func (mm *MousebindingManager) checkDoubleClick(button ebiten.MouseButton) bool {
	if !inpututil.IsMouseButtonJustPressed(button) {
		return false
	}

	now := time.Now()
	timeSinceLastClick := now.Sub(mm.doubleClickTracker.lastClickTime)

	if mm.doubleClickTracker.lastClickButton == button &&
		timeSinceLastClick <= time.Duration(mm.settings.DoubleClickTime)*time.Millisecond {
		mm.doubleClickTracker.clickCount++
		if mm.doubleClickTracker.clickCount == 2 {
			mm.doubleClickTracker.clickCount = 0
			mm.doubleClickTracker.lastClickTime = now
			return true
		}
	} else {
		mm.doubleClickTracker.clickCount = 1
		mm.doubleClickTracker.lastClickButton = button
	}

	mm.doubleClickTracker.lastClickTime = now
	return false
}

// DragDelta polls left-button drag state and returns the pan delta for
// this frame. The drag only starts once the cursor moves past the
// configured threshold, so clicks are not mistaken for drags.
func (mm *MousebindingManager) DragDelta() (float64, float64, bool) {
	if !mm.settings.EnableMouse || !mm.settings.EnableDragPan {
		return 0, 0, false
	}

	x, y := ebiten.CursorPosition()

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mm.drag = dragTracker{}
		return 0, 0, false
	}

	if !mm.drag.active {
		mm.drag = dragTracker{active: true, lastX: x, lastY: y, startX: x, startY: y}
		return 0, 0, false
	}

	if !mm.drag.dragging {
		dx, dy := x-mm.drag.startX, y-mm.drag.startY
		if dx*dx+dy*dy < mm.settings.DragThreshold*mm.settings.DragThreshold {
			mm.drag.lastX, mm.drag.lastY = x, y
			return 0, 0, false
		}
		mm.drag.dragging = true
	}

	dx := float64(x-mm.drag.lastX) * mm.settings.DragSensitivity
	dy := float64(y-mm.drag.lastY) * mm.settings.DragSensitivity
	mm.drag.lastX, mm.drag.lastY = x, y
	return dx, dy, dx != 0 || dy != 0
}

// CheckAction checks if any mouse binding for the given action is triggered
func (mm *MousebindingManager) CheckAction(action string) bool {
	for _, mouseStr := range mm.mousebindings[action] {
		combination, valid := mm.parseMouseString(mouseStr)
		if valid && mm.isMouseActionTriggered(combination) {
			return true
		}
	}
	return false
}

// ExecuteAction executes the given action using the InputActions interface
func (mm *MousebindingManager) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !mm.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions, inputState)
}

// GetMousebindings returns the current mouse bindings map (for display purposes)
func (mm *MousebindingManager) GetMousebindings() map[string][]string {
	return mm.mousebindings
}
