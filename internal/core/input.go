package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move the column cursor left
	ActionRight          // D, Right arrow - move the column cursor right
	ActionDrop           // Space, Enter, Down - drop a token in the cursor column
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - start a new game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoColumn marks an InputFrame without a direct column selection.
const NoColumn = -1

// InputFrame represents the input collected during one tick.
type InputFrame struct {
	Actions map[Action]bool
	// Column is a column picked directly (digit key or mouse click),
	// or NoColumn.
	Column int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Column:  NoColumn,
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

// SelectColumn records a direct column pick.
func (f *InputFrame) SelectColumn(col int) {
	f.Column = col
}

// HasColumn reports whether a column was picked directly this frame.
func (f InputFrame) HasColumn() bool {
	return f.Column >= 0
}

// TakeColumn returns the picked column and clears it from the frame.
func (f *InputFrame) TakeColumn() (int, bool) {
	col := f.Column
	f.Column = NoColumn
	return col, col >= 0
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return !f.HasColumn() && len(f.Actions) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Column = NoColumn
}
