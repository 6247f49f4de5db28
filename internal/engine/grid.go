package engine

import (
	"fmt"
	"strings"
)

// Cell is a (row, column) coordinate. Row 0 is the top of the grid.
type Cell struct {
	Row    int
	Column int
}

// String formats the cell as "(row,column)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Grid is the matrix of cell owners.
// A cell is non-empty only if every cell below it in the same column is
// non-empty; DropToken is the only mutator that keeps that true.
type Grid struct {
	rows    int
	columns int
	cells   [][]Owner
}

// NewGrid creates an empty grid.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("engine: new grid %dx%d: %w", rows, columns, ErrInvalidDimensions)
	}
	g := &Grid{rows: rows, columns: columns}
	g.allocate()
	return g, nil
}

func (g *Grid) allocate() {
	g.cells = make([][]Owner, g.rows)
	for r := range g.cells {
		g.cells[r] = make([]Owner, g.columns)
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return g.columns
}

// InBounds reports whether (row, column) addresses a cell.
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// DropToken places player's token in the lowest empty cell of column and
// returns its row. The grid is untouched on error.
func (g *Grid) DropToken(column int, player Owner) (int, error) {
	if !player.Valid() {
		return -1, fmt.Errorf("engine: drop %v: %w", player, ErrInvalidPlayer)
	}
	if column < 0 || column >= g.columns {
		return -1, fmt.Errorf("engine: drop in column %d: %w", column, ErrInvalidColumn)
	}
	for row := g.rows - 1; row >= 0; row-- {
		if g.cells[row][column] == Empty {
			g.cells[row][column] = player
			return row, nil
		}
	}
	return -1, fmt.Errorf("engine: drop in column %d: %w", column, ErrColumnFull)
}

// CellOwner returns the owner at (row, column).
func (g *Grid) CellOwner(row, column int) (Owner, error) {
	if !g.InBounds(row, column) {
		return Empty, fmt.Errorf("engine: cell (%d,%d): %w", row, column, ErrOutOfBounds)
	}
	return g.cells[row][column], nil
}

// at is the unchecked accessor used by the detectors.
func (g *Grid) at(row, column int) Owner {
	return g.cells[row][column]
}

// IsColumnFull reports whether the top cell of column is occupied.
// Out-of-range columns report false.
func (g *Grid) IsColumnFull(column int) bool {
	if column < 0 || column >= g.columns {
		return false
	}
	return g.cells[0][column] != Empty
}

// IsFull reports whether every top-row cell is occupied, which given the
// gravity invariant means the whole grid is.
func (g *Grid) IsFull() bool {
	for c := 0; c < g.columns; c++ {
		if g.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

// FullColumns returns a per-column flag set for columns whose top cell is
// occupied.
func (g *Grid) FullColumns() []bool {
	full := make([]bool, g.columns)
	for c := range full {
		full[c] = g.IsColumnFull(c)
	}
	return full
}

// Height returns how many tokens column holds.
func (g *Grid) Height(column int) int {
	if column < 0 || column >= g.columns {
		return 0
	}
	h := 0
	for row := g.rows - 1; row >= 0 && g.cells[row][column] != Empty; row-- {
		h++
	}
	return h
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.cells {
		for _, o := range row {
			if o != Empty {
				n++
			}
		}
	}
	return n
}

// Reset empties every cell.
func (g *Grid) Reset() {
	g.allocate()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, columns: g.columns}
	c.cells = make([][]Owner, g.rows)
	for r := range g.cells {
		c.cells[r] = make([]Owner, g.columns)
		copy(c.cells[r], g.cells[r])
	}
	return c
}

// String dumps the grid as rows of X/O/. with a column index footer.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.columns*2 + 1) * (g.rows + 1))

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(g.cells[r][c].Symbol())
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < g.columns; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + c%10))
	}
	return sb.String()
}
