package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.String() != "None" {
		t.Errorf("zero frame = %q, expected empty", f.String())
	}

	f.Set(ActionLeft)
	f.Set(ActionDebug)
	f.Set(ActionNone)

	if !f.Has(ActionLeft) || !f.Has(ActionDebug) {
		t.Errorf("frame = %s, expected Left and Debug", f)
	}
	if f.Has(ActionRight) || f.Has(ActionNone) {
		t.Errorf("frame = %s has unexpected actions", f)
	}
	if f.String() != "Left+Debug" {
		t.Errorf("String() = %q, expected %q", f.String(), "Left+Debug")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear() left %s", f)
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLaunch, "Launch"},
		{ActionQuit, "Quit"},
		{Action(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}
