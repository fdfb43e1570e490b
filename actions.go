package main

// ActionDefinition defines an action with its default keybindings,
// mouse bindings, and description.
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default
// keybindings, mouse bindings, and descriptions.
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, []string{}, "Quit application"},
	{"help", []string{"Shift+Slash"}, []string{"Alt+RightClick"}, "Show/hide help"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide info display"},
	{"next", []string{"Space", "KeyN"}, []string{"LeftClick", "WheelDown"}, "Next image"},
	{"previous", []string{"Backspace", "KeyP"}, []string{"RightClick", "WheelUp"}, "Previous image"},
	{"jump_first", []string{"Home"}, []string{}, "Jump to first image"},
	{"jump_last", []string{"End"}, []string{}, "Jump to last image"},
	{"rotate_left", []string{"KeyL"}, []string{}, "Rotate left to a quarter turn"},
	{"rotate_right", []string{"KeyR"}, []string{}, "Rotate right to a quarter turn"},
	{"rotate_left_fine", []string{"Shift+KeyL"}, []string{}, "Rotate left 1 degree"},
	{"rotate_right_fine", []string{"Shift+KeyR"}, []string{}, "Rotate right 1 degree"},
	{"flip_horizontal", []string{"KeyH"}, []string{}, "Flip horizontally"},
	{"flip_vertical", []string{"KeyV"}, []string{}, "Flip vertically"},
	{"reset_orientation", []string{"KeyO"}, []string{}, "Reset rotation and flips"},
	{"cycle_sort", []string{"Shift+KeyS"}, []string{"Alt+MiddleClick"}, "Cycle sort method (Natural/Simple/Entry)"},
	{"fullscreen", []string{"Enter"}, []string{"DoubleLeftClick"}, "Toggle fullscreen"},
	{"fit_window", []string{"KeyW"}, []string{}, "Resize window to the image"},

	// Zoom and pan actions
	{"zoom_in", []string{"Equal", "Shift+Equal"}, []string{"Ctrl+WheelUp"}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, []string{"Ctrl+WheelDown"}, "Zoom out"},
	{"zoom_reset", []string{"Key0"}, []string{"Shift+MiddleClick"}, "Reset to 100% zoom"},
	{"zoom_fit", []string{"KeyF"}, []string{"Alt+LeftClick"}, "Toggle fit to window mode"},
	{"pan_up", []string{"ArrowUp"}, []string{}, "Pan up"},
	{"pan_down", []string{"ArrowDown"}, []string{}, "Pan down"},
	{"pan_left", []string{"ArrowLeft"}, []string{}, "Pan left"},
	{"pan_right", []string{"ArrowRight"}, []string{}, "Pan right"},
}

// ActionExecutor is the single source of truth mapping action names to
// InputActions calls, shared by the keyboard and mouse binding
// managers.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions
// interface. It returns false for unknown action names.
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "help":
		inputActions.ToggleHelp()
	case "info":
		inputActions.ToggleInfo()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "jump_first":
		inputActions.JumpFirst()
	case "jump_last":
		inputActions.JumpLast()
	case "rotate_left":
		inputActions.RotateLeft()
	case "rotate_right":
		inputActions.RotateRight()
	case "rotate_left_fine":
		inputActions.RotateLeftFine()
	case "rotate_right_fine":
		inputActions.RotateRightFine()
	case "flip_horizontal":
		inputActions.FlipHorizontal()
	case "flip_vertical":
		inputActions.FlipVertical()
	case "reset_orientation":
		inputActions.ResetOrientation()
	case "cycle_sort":
		inputActions.CycleSortMethod()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "fit_window":
		inputActions.FitWindowToImage()
	case "zoom_in":
		inputActions.ZoomIn()
	case "zoom_out":
		inputActions.ZoomOut()
	case "zoom_reset":
		inputActions.ZoomReset()
	case "zoom_fit":
		inputActions.ZoomFit()
	case "pan_up":
		inputActions.PanUp()
	case "pan_down":
		inputActions.PanDown()
	case "pan_left":
		inputActions.PanLeft()
	case "pan_right":
		inputActions.PanRight()
	default:
		return false
	}
	return true
}

// globalActionExecutor is shared by both binding managers.
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their
// descriptions.
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default
// keybindings.
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their
// default mouse bindings.
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
