package connect4

import "github.com/vovakirdan/tui-connect4/internal/engine"

// Snapshot captures the complete game state for tests and the headless command.
type Snapshot struct {
	Tick    uint64
	Variant string
	Rules   engine.Rules
	Board   string // ASCII grid, see engine.Grid.String
	Cursor  int
	Current engine.Owner
	Outcome engine.Outcome
	Winner  engine.Owner
	Line    []engine.Cell
	Moves   int
	Falling bool
	Message string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Variant: g.id,
		Rules:   g.rules,
		Board:   g.match.Grid().String(),
		Cursor:  g.cursor,
		Current: g.match.CurrentPlayer(),
		Outcome: g.match.Outcome(),
		Winner:  g.match.Winner(),
		Moves:   g.match.MoveCount(),
		Falling: g.drop != nil,
		Message: g.message,
	}
	if line, ok := g.match.WinningLine(); ok {
		s.Line = line.Cells
	}
	return s
}
