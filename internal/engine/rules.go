package engine

import "fmt"

// Default board geometry, matching the classic 6x7 game.
const (
	DefaultRows      = 6
	DefaultColumns   = 7
	DefaultRunLength = 4
)

// Rules configures a game.
type Rules struct {
	Rows      int
	Columns   int
	RunLength int  // Cells in a row needed to win
	Diagonals bool // Also count diagonal runs
}

// ClassicRules returns the 6x7, four-in-a-row rules with horizontal and
// vertical runs only.
func ClassicRules() Rules {
	return Rules{
		Rows:      DefaultRows,
		Columns:   DefaultColumns,
		RunLength: DefaultRunLength,
	}
}

// Validate checks the rules can build a game.
func (r Rules) Validate() error {
	if r.Rows < 1 || r.Columns < 1 {
		return fmt.Errorf("engine: rules %dx%d: %w", r.Rows, r.Columns, ErrInvalidDimensions)
	}
	if r.RunLength < 2 {
		return fmt.Errorf("engine: rules run length %d: %w", r.RunLength, ErrInvalidRunLength)
	}
	return nil
}

// Reachable reports whether a run of RunLength fits anywhere on the grid.
// Unreachable rules are legal but every game ends in a tie.
func (r Rules) Reachable() bool {
	return r.RunLength <= r.Rows || r.RunLength <= r.Columns
}

// String formats the rules as e.g. "6x7, 4 in a row".
func (r Rules) String() string {
	s := fmt.Sprintf("%dx%d, %d in a row", r.Rows, r.Columns, r.RunLength)
	if r.Diagonals {
		s += ", diagonals"
	}
	return s
}
