package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillColumns builds a grid where columns[c] lists owners bottom-up.
func fillColumns(t *testing.T, rows int, columns [][]Owner) *Grid {
	t.Helper()

	g, err := NewGrid(rows, len(columns))
	require.NoError(t, err)
	for c, stack := range columns {
		for _, o := range stack {
			_, err := g.DropToken(c, o)
			require.NoError(t, err)
		}
	}
	return g
}

const (
	X = PlayerOne
	O = PlayerTwo
)

func TestCheckHorizontalRun(t *testing.T) {
	g := fillColumns(t, 6, [][]Owner{{X, O}, {X, O}, {X, O}, {X}, {}, {}, {}})
	d := NewWinDetector(g, 4, false)

	line, ok := d.Check(Cell{Row: 5, Column: 3})
	require.True(t, ok)
	assert.Equal(t, PlayerOne, line.Player)
	assert.Equal(t, Horizontal, line.Direction)
	assert.Equal(t, []Cell{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, line.Cells)
}

func TestCheckVerticalRun(t *testing.T) {
	g := fillColumns(t, 6, [][]Owner{{O, X, X, X, X}, {}, {}, {}, {}, {}, {}})
	d := NewWinDetector(g, 4, false)

	line, ok := d.Check(Cell{Row: 1, Column: 0})
	require.True(t, ok)
	assert.Equal(t, PlayerOne, line.Player)
	assert.Equal(t, Vertical, line.Direction)
	assert.Equal(t, []Cell{{1, 0}, {2, 0}, {3, 0}, {4, 0}}, line.Cells)
}

func TestCheckBrokenRunIsNotAWin(t *testing.T) {
	// X X O X X X: five X in the row but never four adjacent
	g := fillColumns(t, 6, [][]Owner{{X}, {X}, {O}, {X}, {X}, {X}, {}})
	d := NewWinDetector(g, 4, false)

	_, ok := d.Check(Cell{Row: 5, Column: 5})
	assert.False(t, ok)
	_, ok = d.CheckBoard()
	assert.False(t, ok)
}

func TestCheckLongRunReportsFirstWindow(t *testing.T) {
	g := fillColumns(t, 6, [][]Owner{{X}, {X}, {X}, {X}, {X}, {}, {}})
	d := NewWinDetector(g, 4, false)

	line, ok := d.Check(Cell{Row: 5, Column: 2})
	require.True(t, ok)
	assert.Equal(t, []Cell{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, line.Cells)
}

func TestCheckHorizontalBeatsVertical(t *testing.T) {
	// (2,3) completes both row 2 and column 3
	g := fillColumns(t, 6, [][]Owner{
		{O, X, O, X},
		{X, O, O, X},
		{O, O, X, X},
		{X, X, X, X},
		{}, {}, {},
	})
	d := NewWinDetector(g, 4, false)

	line, ok := d.Check(Cell{Row: 2, Column: 3})
	require.True(t, ok)
	assert.Equal(t, Horizontal, line.Direction)
	assert.Equal(t, []Cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}}, line.Cells)

	full, ok := d.CheckBoard()
	require.True(t, ok)
	assert.Equal(t, line, full)
}

func TestCheckIgnoresDiagonalsUnlessEnabled(t *testing.T) {
	// X on (5,0) (4,1) (3,2) (2,3)
	g := fillColumns(t, 6, [][]Owner{
		{X},
		{O, X},
		{X, O, X},
		{O, X, O, X},
		{}, {}, {},
	})

	classic := NewWinDetector(g, 4, false)
	_, ok := classic.Check(Cell{Row: 2, Column: 3})
	assert.False(t, ok)

	modern := NewWinDetector(g, 4, true)
	line, ok := modern.Check(Cell{Row: 2, Column: 3})
	require.True(t, ok)
	assert.Equal(t, DiagonalUp, line.Direction)
	assert.Equal(t, []Cell{{5, 0}, {4, 1}, {3, 2}, {2, 3}}, line.Cells)

	full, ok := modern.CheckBoard()
	require.True(t, ok)
	assert.Equal(t, line, full)
}

func TestCheckDiagonalDown(t *testing.T) {
	// O on (2,0) (3,1) (4,2) (5,3)
	g := fillColumns(t, 6, [][]Owner{
		{X, O, X, O},
		{X, X, O},
		{X, O},
		{O},
		{}, {}, {},
	})
	d := NewWinDetector(g, 4, true)

	line, ok := d.Check(Cell{Row: 2, Column: 0})
	require.True(t, ok)
	assert.Equal(t, PlayerTwo, line.Player)
	assert.Equal(t, DiagonalDown, line.Direction)
	assert.Equal(t, []Cell{{2, 0}, {3, 1}, {4, 2}, {5, 3}}, line.Cells)
}

func TestCheckConfigurableRunLength(t *testing.T) {
	g := fillColumns(t, 4, [][]Owner{{X}, {X}, {X}, {}, {}})

	three := NewWinDetector(g, 3, false)
	line, ok := three.Check(Cell{Row: 3, Column: 2})
	require.True(t, ok)
	assert.Len(t, line.Cells, 3)

	four := NewWinDetector(g, 4, false)
	_, ok = four.Check(Cell{Row: 3, Column: 2})
	assert.False(t, ok)
}

func TestCheckOutOfBoundsCell(t *testing.T) {
	g := fillColumns(t, 6, [][]Owner{{X}, {}, {}, {}, {}, {}, {}})
	d := NewWinDetector(g, 4, true)

	_, ok := d.Check(Cell{Row: 9, Column: 9})
	assert.False(t, ok)
}

func TestCheckReturnsIndependentLines(t *testing.T) {
	g := fillColumns(t, 6, [][]Owner{{X}, {X}, {X}, {X}, {}, {}, {}})
	d := NewWinDetector(g, 4, false)

	first, ok := d.Check(Cell{Row: 5, Column: 3})
	require.True(t, ok)
	first.Cells[0] = Cell{Row: 99, Column: 99}

	second, ok := d.Check(Cell{Row: 5, Column: 3})
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 5, Column: 0}, second.Cells[0])
}

// Scanning around the last move must agree with a full-board scan for
// every position reachable by legal play.
func TestCheckMatchesFullBoardScan(t *testing.T) {
	rulesets := []Rules{
		ClassicRules(),
		{Rows: 6, Columns: 7, RunLength: 4, Diagonals: true},
		{Rows: 5, Columns: 5, RunLength: 3, Diagonals: true},
		{Rows: 7, Columns: 9, RunLength: 5, Diagonals: true},
	}
	rng := rand.New(rand.NewSource(42))

	for _, rules := range rulesets {
		for game := 0; game < 200; game++ {
			g, err := NewGrid(rules.Rows, rules.Columns)
			require.NoError(t, err)
			d := NewWinDetector(g, rules.RunLength, rules.Diagonals)
			player := PlayerOne

			for !g.IsFull() {
				col := rng.Intn(rules.Columns)
				row, err := g.DropToken(col, player)
				if err != nil {
					continue
				}

				local, localOK := d.Check(Cell{Row: row, Column: col})
				full, fullOK := d.CheckBoard()
				require.Equal(t, fullOK, localOK, "rules %v\n%s", rules, g)
				if localOK {
					require.Equal(t, full, local, "rules %v\n%s", rules, g)
					break
				}
				player = player.Opponent()
			}
		}
	}
}
