package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows sessions to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up (menus)
	ActionDown           // S, Down arrow - move cursor down (menus)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
	ActionDismiss        // Space/Enter - close the result card early
	ActionReplay         // R - hear the prompt again
	ActionHole1          // 1..6 - whack the mole in that hole
	ActionHole2
	ActionHole3
	ActionHole4
	ActionHole5
	ActionHole6
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionDismiss:
		return "Dismiss"
	case ActionReplay:
		return "Replay"
	}
	if hole, ok := a.Hole(); ok {
		return "Hole" + string(rune('1'+hole))
	}
	return "Unknown"
}

// HoleAction returns the action that whacks the given 0-based hole.
func HoleAction(hole int) Action {
	return ActionHole1 + Action(hole)
}

// Hole reports the 0-based hole index for a whack action.
func (a Action) Hole() (int, bool) {
	if a < ActionHole1 || a > ActionHole6 {
		return 0, false
	}
	return int(a - ActionHole1), true
}

// InputFrame represents the player's input during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// FirstHole returns the lowest whacked hole in this frame.
// Only one whack counts per tick.
func (f InputFrame) FirstHole() (int, bool) {
	for a := ActionHole1; a <= ActionHole6; a++ {
		if f.Has(a) {
			hole, _ := a.Hole()
			return hole, true
		}
	}
	return 0, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
