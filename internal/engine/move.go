package engine

import "fmt"

// Move is a single drop request.
type Move struct {
	Column int
	Player Owner
}

// MoveEngine validates a move against the game phase and applies the
// gravity drop to the grid.
type MoveEngine struct {
	grid *Grid
}

// NewMoveEngine creates a move engine bound to grid.
func NewMoveEngine(grid *Grid) *MoveEngine {
	return &MoveEngine{grid: grid}
}

// Place drops m.Player's token in m.Column and returns the filled cell.
// Nothing is mutated when the move is rejected.
func (e *MoveEngine) Place(phase Outcome, m Move) (Cell, error) {
	if phase != InProgress {
		return Cell{}, fmt.Errorf("engine: move in column %d: %w", m.Column, ErrGameOver)
	}
	if m.Column < 0 || m.Column >= e.grid.Columns() {
		return Cell{}, fmt.Errorf("engine: move in column %d: %w", m.Column, ErrInvalidColumn)
	}
	if e.grid.IsColumnFull(m.Column) {
		return Cell{}, fmt.Errorf("engine: move in column %d: %w", m.Column, ErrColumnFull)
	}

	row, err := e.grid.DropToken(m.Column, m.Player)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Row: row, Column: m.Column}, nil
}

// ValidColumns returns the columns that can still accept a token.
func (e *MoveEngine) ValidColumns() []int {
	cols := make([]int, 0, e.grid.Columns())
	for c := 0; c < e.grid.Columns(); c++ {
		if !e.grid.IsColumnFull(c) {
			cols = append(cols, c)
		}
	}
	return cols
}
