package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseMouseString(t *testing.T) {
	mm := NewMousebindingManager(GetDefaultMousebindings(), GetDefaultMouseSettings())

	tests := []struct {
		in    string
		want  MouseCombination
		valid bool
	}{
		{"LeftClick", MouseCombination{Button: ebiten.MouseButtonLeft}, true},
		{"RightClick", MouseCombination{Button: ebiten.MouseButtonRight}, true},
		{"MiddleClick", MouseCombination{Button: ebiten.MouseButtonMiddle}, true},
		{"Shift+LeftClick", MouseCombination{Button: ebiten.MouseButtonLeft, Shift: true}, true},
		{"Ctrl+WheelUp", MouseCombination{IsWheel: true, WheelDeltaY: 1.0, Ctrl: true}, true},
		{"WheelDown", MouseCombination{IsWheel: true, WheelDeltaY: -1.0}, true},
		{"WheelLeft", MouseCombination{IsWheel: true, WheelDeltaX: -1.0}, true},
		{"WheelRight", MouseCombination{IsWheel: true, WheelDeltaX: 1.0}, true},
		{"DoubleLeftClick", MouseCombination{Button: ebiten.MouseButtonLeft, IsDoubleClick: true}, true},
		{"Alt+DoubleRightClick", MouseCombination{Button: ebiten.MouseButtonRight, IsDoubleClick: true, Alt: true}, true},
		{"Back", MouseCombination{Button: ebiten.MouseButton3}, true},
		{"WheelSideways", MouseCombination{}, false},
		{"DoubleNothing", MouseCombination{}, false},
		{"TripleClick", MouseCombination{}, false},
	}

	for _, tt := range tests {
		got, valid := mm.parseMouseString(tt.in)
		if valid != tt.valid {
			t.Errorf("parseMouseString(%q) valid = %v, want %v", tt.in, valid, tt.valid)
			continue
		}
		if valid && *got != tt.want {
			t.Errorf("parseMouseString(%q) = %+v, want %+v", tt.in, *got, tt.want)
		}
	}
}

func TestDefaultMousebindingsParse(t *testing.T) {
	mm := NewMousebindingManager(GetDefaultMousebindings(), GetDefaultMouseSettings())

	for action, bindings := range GetDefaultMousebindings() {
		for _, b := range bindings {
			if _, ok := mm.parseMouseString(b); !ok {
				t.Errorf("default binding %q for action %q does not parse", b, action)
			}
		}
	}
}

func TestDefaultMouseSettings(t *testing.T) {
	s := GetDefaultMouseSettings()
	if !s.EnableMouse {
		t.Error("mouse disabled by default")
	}
	if s.WheelSensitivity <= 0 {
		t.Errorf("WheelSensitivity = %v", s.WheelSensitivity)
	}
	if s.DragThreshold <= 0 {
		t.Errorf("DragThreshold = %v", s.DragThreshold)
	}
}
