package engine

import "fmt"

// Game is the controller: it owns the grid, enforces turn order and
// decides the outcome after every accepted move.
// A Game is not safe for concurrent use; callers serialize moves.
type Game struct {
	rules    Rules
	grid     *Grid
	mover    *MoveEngine
	detector *WinDetector

	current Owner
	outcome Outcome
	winner  Owner
	line    WinningLine
	moves   int
	last    Cell
	hasLast bool
}

// New creates a game in InProgress(PlayerOne).
func New(rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(rules.Rows, rules.Columns)
	if err != nil {
		return nil, err
	}

	g := &Game{
		rules:    rules,
		grid:     grid,
		mover:    NewMoveEngine(grid),
		detector: NewWinDetector(grid, rules.RunLength, rules.Diagonals),
	}
	g.Reset()
	return g, nil
}

// NewClassic creates a 6x7 four-in-a-row game without diagonals.
func NewClassic() *Game {
	g, err := New(ClassicRules())
	if err != nil {
		panic(fmt.Sprintf("engine: classic rules rejected: %v", err))
	}
	return g
}

// Reset empties the grid and returns to InProgress(PlayerOne).
func (g *Game) Reset() {
	g.grid.Reset()
	g.current = PlayerOne
	g.outcome = InProgress
	g.winner = Empty
	g.line = WinningLine{}
	g.moves = 0
	g.last = Cell{}
	g.hasLast = false
}

// RequestMove drops the current player's token in column.
// A rejected move returns a ResultRejected result together with the error
// and leaves the game unchanged.
func (g *Game) RequestMove(column int) (MoveResult, error) {
	player := g.current
	placed, err := g.mover.Place(g.outcome, Move{Column: column, Player: player})
	if err != nil {
		return MoveResult{
			Kind:   ResultRejected,
			Row:    -1,
			Column: column,
			Player: player,
			Next:   g.next(),
			Err:    err,
		}, err
	}

	g.moves++
	g.last = placed
	g.hasLast = true

	result := MoveResult{
		Row:    placed.Row,
		Column: placed.Column,
		Player: player,
	}

	if line, ok := g.detector.Check(placed); ok {
		g.outcome = Won
		g.winner = line.Player
		g.line = line
		result.Kind = ResultWon
		result.Winner = line.Player
		result.Line = line
		return result, nil
	}

	if g.grid.IsFull() {
		g.outcome = Tied
		result.Kind = ResultTied
		return result, nil
	}

	g.current = player.Opponent()
	result.Kind = ResultPlaced
	result.Next = g.current
	return result, nil
}

// next returns the player to move, or Empty when the game is over.
func (g *Game) next() Owner {
	if g.outcome.Terminal() {
		return Empty
	}
	return g.current
}

// QueryCell returns the owner of (row, column).
func (g *Game) QueryCell(row, column int) (Owner, error) {
	return g.grid.CellOwner(row, column)
}

// CurrentPlayer returns whose turn it is. After the game ends it keeps
// returning the player who made the last move.
func (g *Game) CurrentPlayer() Owner {
	return g.current
}

// IsGameOver reports whether the game reached Won or Tied.
func (g *Game) IsGameOver() bool {
	return g.outcome.Terminal()
}

// Outcome returns the current phase.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Winner returns the winning player, or Empty.
func (g *Game) Winner() Owner {
	return g.winner
}

// WinningLine returns the deciding run once the game is won.
func (g *Game) WinningLine() (WinningLine, bool) {
	if g.outcome != Won {
		return WinningLine{}, false
	}
	return g.line, true
}

// LastMove returns the most recently filled cell.
func (g *Game) LastMove() (Cell, bool) {
	return g.last, g.hasLast
}

// MoveCount returns the number of accepted moves since the last reset.
func (g *Game) MoveCount() int {
	return g.moves
}

// Rules returns the rules the game was built with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Grid returns a copy of the grid for rendering.
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// IsColumnFull reports whether column accepts no more tokens.
func (g *Game) IsColumnFull(column int) bool {
	return g.grid.IsColumnFull(column)
}

// ValidColumns returns the columns that can still accept a token.
func (g *Game) ValidColumns() []int {
	if g.outcome.Terminal() {
		return nil
	}
	return g.mover.ValidColumns()
}

// State returns a snapshot of the controller.
func (g *Game) State() GameState {
	return GameState{
		CurrentPlayer: g.current,
		Outcome:       g.outcome,
		Winner:        g.winner,
		ColumnFull:    g.grid.FullColumns(),
		Moves:         g.moves,
	}
}
