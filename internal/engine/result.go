package engine

import "fmt"

// Outcome is the phase of a game.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Tied
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Tied:
		return "tied"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (o Outcome) Terminal() bool {
	return o == Won || o == Tied
}

// ResultKind tags a MoveResult.
type ResultKind int

const (
	ResultPlaced ResultKind = iota
	ResultWon
	ResultTied
	ResultRejected
)

// String returns a human-readable name for the result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultPlaced:
		return "placed"
	case ResultWon:
		return "won"
	case ResultTied:
		return "tied"
	case ResultRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MoveResult reports what a RequestMove call did.
//
// Placed carries Row, Column and Next. Won carries Winner and Line as well
// as the placed cell. Tied carries the placed cell. Rejected carries Err.
type MoveResult struct {
	Kind   ResultKind
	Row    int
	Column int
	Player Owner // Who moved (or tried to)
	Next   Owner // Player to move next; Empty once the game is over
	Winner Owner
	Line   WinningLine
	Err    error
}

// Cell returns the placed coordinate.
func (r MoveResult) Cell() Cell {
	return Cell{Row: r.Row, Column: r.Column}
}

// String summarizes the result for logs and the headless CLI.
func (r MoveResult) String() string {
	switch r.Kind {
	case ResultPlaced:
		return fmt.Sprintf("%v placed at %v, %v to move", r.Player, r.Cell(), r.Next)
	case ResultWon:
		return fmt.Sprintf("%v won with %v run %v", r.Winner, r.Line.Direction, r.Line.Cells)
	case ResultTied:
		return fmt.Sprintf("%v placed at %v, tie game", r.Player, r.Cell())
	case ResultRejected:
		return fmt.Sprintf("move in column %d rejected: %v", r.Column, r.Err)
	default:
		return "unknown result"
	}
}

// GameState is a read-only snapshot of the controller.
type GameState struct {
	CurrentPlayer Owner
	Outcome       Outcome
	Winner        Owner
	ColumnFull    []bool
	Moves         int
}
