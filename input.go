package main

// InputHandler processes keyboard and mouse input for each frame.
type InputHandler struct {
	inputActions        InputActions
	inputState          InputState
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, inputState InputState,
	km *KeybindingManager, mm *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		inputState:          inputState,
		keybindingManager:   km,
		mousebindingManager: mm,
	}
}

// handledActions lists every bindable action in execution order. Exit
// runs first so a quit never loses to another binding on the same
// frame.
var handledActions = []string{
	"exit",
	"help",
	"info",
	"fullscreen",
	"fit_window",
	"cycle_sort",
	"rotate_left",
	"rotate_right",
	"rotate_left_fine",
	"rotate_right_fine",
	"flip_horizontal",
	"flip_vertical",
	"reset_orientation",
	"zoom_in",
	"zoom_out",
	"zoom_reset",
	"zoom_fit",
	"pan_up",
	"pan_down",
	"pan_left",
	"pan_right",
	"next",
	"previous",
	"jump_first",
	"jump_last",
}

// HandleInput processes all input for the current frame. It returns
// true if any action fired.
func (h *InputHandler) HandleInput() bool {
	if h.inputActions.GetTotalCount() == 0 {
		// Still allow quitting an empty viewer.
		return h.keybindingManager.ExecuteAction("exit", h.inputActions, h.inputState)
	}

	inputProcessed := false
	for _, action := range handledActions {
		if h.keybindingManager.ExecuteAction(action, h.inputActions, h.inputState) {
			inputProcessed = true
		}
		if h.mousebindingManager.ExecuteAction(action, h.inputActions, h.inputState) {
			inputProcessed = true
		}
	}

	inputProcessed = h.handleDragPan() || inputProcessed
	return inputProcessed
}

// handleDragPan applies mouse drag movement as panning. Dragging only
// pans in manual zoom mode; fit mode has nothing to pan.
func (h *InputHandler) handleDragPan() bool {
	if h.inputState.GetZoomMode() != ZoomModeManual {
		return false
	}
	dx, dy, ok := h.mousebindingManager.DragDelta()
	if !ok {
		return false
	}
	h.inputActions.PanByDelta(dx, dy)
	return true
}
