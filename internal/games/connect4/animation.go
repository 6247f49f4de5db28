package connect4

import "github.com/vovakirdan/tui-connect4/internal/engine"

// dropAnimation is a token falling from the top row to where it landed.
type dropAnimation struct {
	player      engine.Owner
	column      int
	target      int
	ticksPerRow int
	ticks       int
}

func newDropAnimation(p engine.Owner, column, target, ticksPerRow int) *dropAnimation {
	if ticksPerRow < 1 {
		ticksPerRow = 1
	}
	return &dropAnimation{
		player:      p,
		column:      column,
		target:      target,
		ticksPerRow: ticksPerRow,
	}
}

// row is the row the token is currently drawn on.
func (a *dropAnimation) row() int {
	r := a.ticks / a.ticksPerRow
	if r > a.target {
		r = a.target
	}
	return r
}

// advance moves the animation one tick and reports whether it is still running.
func (a *dropAnimation) advance() bool {
	a.ticks++
	return a.row() < a.target
}

func (a *dropAnimation) covers(row, column int) bool {
	return row == a.target && column == a.column
}
