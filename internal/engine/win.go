package engine

// Direction names the axis a winning run lies on.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	DiagonalDown // Top-left to bottom-right
	DiagonalUp   // Bottom-left to top-right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalDown:
		return "diagonal \\"
	case DiagonalUp:
		return "diagonal /"
	default:
		return "unknown"
	}
}

// WinningLine is the run that decided a game.
// Cells holds exactly RunLength coordinates in scan order.
type WinningLine struct {
	Player    Owner
	Direction Direction
	Cells     []Cell
}

// Contains reports whether c is part of the line.
func (l WinningLine) Contains(c Cell) bool {
	for _, lc := range l.Cells {
		if lc == c {
			return true
		}
	}
	return false
}

// WinDetector finds runs of RunLength same-owner cells.
// Horizontal runs take precedence over vertical ones, and vertical over
// diagonal; within an axis the first run in scan order wins.
type WinDetector struct {
	grid      *Grid
	runLength int
	diagonals bool
}

// NewWinDetector creates a detector over grid.
func NewWinDetector(grid *Grid, runLength int, diagonals bool) *WinDetector {
	return &WinDetector{
		grid:      grid,
		runLength: runLength,
		diagonals: diagonals,
	}
}

// Check scans only the lines through last. A single drop can only create
// runs through the dropped cell, so the result matches CheckBoard for any
// grid that had no run before the drop.
func (d *WinDetector) Check(last Cell) (WinningLine, bool) {
	if !d.grid.InBounds(last.Row, last.Column) {
		return WinningLine{}, false
	}

	if line, ok := d.scan(d.rowCells(last.Row), Horizontal); ok {
		return line, true
	}
	if line, ok := d.scan(d.columnCells(last.Column), Vertical); ok {
		return line, true
	}
	if !d.diagonals {
		return WinningLine{}, false
	}

	// Walk back to the start of each diagonal through last
	r, c := last.Row, last.Column
	for r > 0 && c > 0 {
		r--
		c--
	}
	if line, ok := d.scan(d.diagonalCells(r, c, 1), DiagonalDown); ok {
		return line, true
	}

	r, c = last.Row, last.Column
	for r < d.grid.Rows()-1 && c > 0 {
		r++
		c--
	}
	return d.scan(d.diagonalCells(r, c, -1), DiagonalUp)
}

// CheckBoard scans the whole grid: rows top to bottom, then columns left to
// right, then diagonals.
func (d *WinDetector) CheckBoard() (WinningLine, bool) {
	for r := 0; r < d.grid.Rows(); r++ {
		if line, ok := d.scan(d.rowCells(r), Horizontal); ok {
			return line, true
		}
	}
	for c := 0; c < d.grid.Columns(); c++ {
		if line, ok := d.scan(d.columnCells(c), Vertical); ok {
			return line, true
		}
	}
	if !d.diagonals {
		return WinningLine{}, false
	}

	for _, start := range d.diagonalStarts(1) {
		if line, ok := d.scan(d.diagonalCells(start.Row, start.Column, 1), DiagonalDown); ok {
			return line, true
		}
	}
	for _, start := range d.diagonalStarts(-1) {
		if line, ok := d.scan(d.diagonalCells(start.Row, start.Column, -1), DiagonalUp); ok {
			return line, true
		}
	}
	return WinningLine{}, false
}

// scan walks a line counting adjacent equal non-empty pairs. The count
// resets on any break; RunLength-1 pairs make a run of RunLength cells.
func (d *WinDetector) scan(cells []Cell, dir Direction) (WinningLine, bool) {
	if len(cells) < d.runLength {
		return WinningLine{}, false
	}

	pairs := 0
	for i := 0; i+1 < len(cells); i++ {
		a := d.grid.at(cells[i].Row, cells[i].Column)
		b := d.grid.at(cells[i+1].Row, cells[i+1].Column)
		if a == Empty || a != b {
			pairs = 0
			continue
		}
		pairs++
		if pairs == d.runLength-1 {
			start := i + 2 - d.runLength
			line := make([]Cell, d.runLength)
			copy(line, cells[start:i+2])
			return WinningLine{Player: a, Direction: dir, Cells: line}, true
		}
	}
	return WinningLine{}, false
}

func (d *WinDetector) rowCells(row int) []Cell {
	cells := make([]Cell, d.grid.Columns())
	for c := range cells {
		cells[c] = Cell{Row: row, Column: c}
	}
	return cells
}

func (d *WinDetector) columnCells(column int) []Cell {
	cells := make([]Cell, d.grid.Rows())
	for r := range cells {
		cells[r] = Cell{Row: r, Column: column}
	}
	return cells
}

// diagonalCells walks from (row, column) to the right, stepping rows by
// rowStep (+1 down, -1 up).
func (d *WinDetector) diagonalCells(row, column, rowStep int) []Cell {
	var cells []Cell
	for d.grid.InBounds(row, column) {
		cells = append(cells, Cell{Row: row, Column: column})
		row += rowStep
		column++
	}
	return cells
}

// diagonalStarts lists the leftmost cell of every diagonal running in the
// given row direction.
func (d *WinDetector) diagonalStarts(rowStep int) []Cell {
	rows, cols := d.grid.Rows(), d.grid.Columns()
	starts := make([]Cell, 0, rows+cols-1)
	if rowStep > 0 {
		// Down-right diagonals start on the left edge or the top edge
		for r := rows - 1; r >= 0; r-- {
			starts = append(starts, Cell{Row: r, Column: 0})
		}
		for c := 1; c < cols; c++ {
			starts = append(starts, Cell{Row: 0, Column: c})
		}
		return starts
	}
	// Up-right diagonals start on the left edge or the bottom edge
	for r := 0; r < rows; r++ {
		starts = append(starts, Cell{Row: r, Column: 0})
	}
	for c := 1; c < cols; c++ {
		starts = append(starts, Cell{Row: rows - 1, Column: c})
	}
	return starts
}
