package core

import "strings"

// Action is an intent the platform derives from a key press. Games only
// ever see actions, never keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // steer the paddle left
	ActionRight          // steer the paddle right
	ActionLaunch         // serve without waiting out the delay
	ActionPause          // toggle pause
	ActionRestart        // start over after game over
	ActionDebug          // toggle the boundary overlay
	ActionBack           // leave the current screen
	ActionQuit           // end the session

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionLaunch:  "Launch",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionDebug:   "Debug",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
// ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// String lists the triggered actions, e.g. "Left+Debug".
func (f InputFrame) String() string {
	if f.Empty() {
		return "None"
	}
	var names []string
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "+")
}
