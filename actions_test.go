package main

import "testing"

// recordingActions records which InputActions methods were invoked.
type recordingActions struct {
	calls []string
}

func (r *recordingActions) record(name string) { r.calls = append(r.calls, name) }

func (r *recordingActions) Exit()                       { r.record("exit") }
func (r *recordingActions) ToggleHelp()                 { r.record("help") }
func (r *recordingActions) ToggleInfo()                 { r.record("info") }
func (r *recordingActions) ToggleFullscreen()           { r.record("fullscreen") }
func (r *recordingActions) FitWindowToImage()           { r.record("fit_window") }
func (r *recordingActions) CycleSortMethod()            { r.record("cycle_sort") }
func (r *recordingActions) NavigateNext()               { r.record("next") }
func (r *recordingActions) NavigatePrevious()           { r.record("previous") }
func (r *recordingActions) JumpFirst()                  { r.record("jump_first") }
func (r *recordingActions) JumpLast()                   { r.record("jump_last") }
func (r *recordingActions) RotateLeft()                 { r.record("rotate_left") }
func (r *recordingActions) RotateRight()                { r.record("rotate_right") }
func (r *recordingActions) RotateLeftFine()             { r.record("rotate_left_fine") }
func (r *recordingActions) RotateRightFine()            { r.record("rotate_right_fine") }
func (r *recordingActions) FlipHorizontal()             { r.record("flip_horizontal") }
func (r *recordingActions) FlipVertical()               { r.record("flip_vertical") }
func (r *recordingActions) ResetOrientation()           { r.record("reset_orientation") }
func (r *recordingActions) ZoomIn()                     { r.record("zoom_in") }
func (r *recordingActions) ZoomOut()                    { r.record("zoom_out") }
func (r *recordingActions) ZoomReset()                  { r.record("zoom_reset") }
func (r *recordingActions) ZoomFit()                    { r.record("zoom_fit") }
func (r *recordingActions) PanUp()                      { r.record("pan_up") }
func (r *recordingActions) PanDown()                    { r.record("pan_down") }
func (r *recordingActions) PanLeft()                    { r.record("pan_left") }
func (r *recordingActions) PanRight()                   { r.record("pan_right") }
func (r *recordingActions) PanByDelta(dx, dy float64)   { r.record("pan_by_delta") }
func (r *recordingActions) ShowOverlayMessage(m string) { r.record("overlay") }
func (r *recordingActions) GetCurrentIndex() int        { return 0 }
func (r *recordingActions) GetTotalCount() int          { return 0 }

type fitWindowState struct{}

func (fitWindowState) GetZoomMode() ZoomMode { return ZoomModeFitWindow }

func TestExecuteActionDispatchesEveryDefinition(t *testing.T) {
	executor := NewActionExecutor()

	for _, def := range actionDefinitions {
		rec := &recordingActions{}
		if !executor.ExecuteAction(def.Name, rec, fitWindowState{}) {
			t.Errorf("ExecuteAction(%q) = false", def.Name)
			continue
		}
		if len(rec.calls) != 1 || rec.calls[0] != def.Name {
			t.Errorf("ExecuteAction(%q) invoked %v", def.Name, rec.calls)
		}
	}
}

func TestExecuteActionUnknown(t *testing.T) {
	rec := &recordingActions{}
	if NewActionExecutor().ExecuteAction("warp_drive", rec, fitWindowState{}) {
		t.Error("unknown action reported as executed")
	}
	if len(rec.calls) != 0 {
		t.Errorf("unknown action invoked %v", rec.calls)
	}
}

func TestActionDescriptionsComplete(t *testing.T) {
	descriptions := GetActionDescriptions()
	for _, def := range actionDefinitions {
		if descriptions[def.Name] == "" {
			t.Errorf("action %q has no description", def.Name)
		}
	}
}
