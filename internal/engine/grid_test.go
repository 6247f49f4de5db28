package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name          string
		rows, columns int
	}{
		{"zero rows", 0, 7},
		{"zero columns", 6, 0},
		{"negative rows", -1, 7},
		{"negative columns", 6, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.rows, tc.columns)
			require.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestNewGridIsEmpty(t *testing.T) {
	g, err := NewGrid(6, 7)
	require.NoError(t, err)

	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 7, g.Columns())
	assert.Equal(t, 0, g.Count())
	assert.False(t, g.IsFull())

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			o, err := g.CellOwner(r, c)
			require.NoError(t, err)
			assert.Equal(t, Empty, o)
		}
	}
}

func TestDropTokenLandsOnLowestEmptyRow(t *testing.T) {
	g, err := NewGrid(6, 7)
	require.NoError(t, err)

	row, err := g.DropToken(3, PlayerOne)
	require.NoError(t, err)
	assert.Equal(t, 5, row)

	row, err = g.DropToken(3, PlayerTwo)
	require.NoError(t, err)
	assert.Equal(t, 4, row)

	row, err = g.DropToken(0, PlayerTwo)
	require.NoError(t, err)
	assert.Equal(t, 5, row)

	o, err := g.CellOwner(4, 3)
	require.NoError(t, err)
	assert.Equal(t, PlayerTwo, o)
	assert.Equal(t, 2, g.Height(3))
}

func TestDropTokenFillsColumnThenFails(t *testing.T) {
	for _, n := range []int{1, 5, 6, 9} {
		g, err := NewGrid(6, 7)
		require.NoError(t, err)

		succeeded := 0
		var lastErr error
		for i := 0; i < n; i++ {
			if _, err := g.DropToken(2, PlayerOne); err != nil {
				lastErr = err
				continue
			}
			succeeded++
		}

		want := min(n, g.Rows())
		assert.Equal(t, want, succeeded, "drops into column of height 6 after %d attempts", n)
		if n > g.Rows() {
			require.ErrorIs(t, lastErr, ErrColumnFull)
			assert.True(t, g.IsColumnFull(2))
		}
	}
}

func TestDropTokenRejectsInvalidInput(t *testing.T) {
	g, err := NewGrid(6, 7)
	require.NoError(t, err)

	_, err = g.DropToken(-1, PlayerOne)
	require.ErrorIs(t, err, ErrInvalidColumn)

	_, err = g.DropToken(7, PlayerOne)
	require.ErrorIs(t, err, ErrInvalidColumn)

	_, err = g.DropToken(0, Empty)
	require.ErrorIs(t, err, ErrInvalidPlayer)

	_, err = g.DropToken(0, Owner(9))
	require.ErrorIs(t, err, ErrInvalidPlayer)

	assert.Equal(t, 0, g.Count(), "rejected drops must not mutate the grid")
}

func TestCellOwnerOutOfBounds(t *testing.T) {
	g, err := NewGrid(6, 7)
	require.NoError(t, err)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {6, 0}, {0, 7}} {
		_, err := g.CellOwner(c.Row, c.Column)
		assert.ErrorIs(t, err, ErrOutOfBounds, "cell %v", c)
	}
}

func TestIsFullTracksTopRow(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	moves := []struct {
		column int
		player Owner
	}{
		{0, PlayerOne}, {1, PlayerTwo}, {0, PlayerTwo},
	}
	for _, m := range moves {
		_, err := g.DropToken(m.column, m.player)
		require.NoError(t, err)
		assert.False(t, g.IsFull())
	}

	_, err = g.DropToken(1, PlayerOne)
	require.NoError(t, err)
	assert.True(t, g.IsFull())
	assert.Equal(t, []bool{true, true}, g.FullColumns())
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	_, err = g.DropToken(1, PlayerOne)
	require.NoError(t, err)

	c := g.Clone()
	_, err = c.DropToken(1, PlayerTwo)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Count())
	assert.Equal(t, 2, c.Count())
}

func TestGridString(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)
	_, _ = g.DropToken(0, PlayerOne)
	_, _ = g.DropToken(0, PlayerTwo)
	_, _ = g.DropToken(3, PlayerOne)

	want := ". . . .\n" +
		"O . . .\n" +
		"X . . X\n" +
		"0 1 2 3"
	assert.Equal(t, want, g.String())
}

func TestGridResetClearsCells(t *testing.T) {
	g, err := NewGrid(6, 7)
	require.NoError(t, err)
	_, _ = g.DropToken(0, PlayerOne)
	_, _ = g.DropToken(1, PlayerTwo)

	g.Reset()

	assert.Equal(t, 0, g.Count())
	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 7, g.Columns())
}

func TestOwnerHelpers(t *testing.T) {
	assert.True(t, PlayerOne.Valid())
	assert.True(t, PlayerTwo.Valid())
	assert.False(t, Empty.Valid())

	assert.Equal(t, PlayerTwo, PlayerOne.Opponent())
	assert.Equal(t, PlayerOne, PlayerTwo.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())

	assert.Equal(t, "Player 1", PlayerOne.String())
	assert.Equal(t, 2, PlayerTwo.Number())
	assert.Equal(t, byte('.'), Empty.Symbol())
}
