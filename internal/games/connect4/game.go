// Package connect4 is the playable Connect Four game: it drives an engine
// match from platform input and draws it into a core.Screen.
package connect4

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

// flashSeconds is how long a rejected-move notice stays on screen.
const flashSeconds = 2

// Game implements registry.Game for one Connect Four variant.
type Game struct {
	id    string
	title string
	rules engine.Rules
	opts  Options

	match  *engine.Game
	cursor int
	tick   uint64

	screenW  int
	screenH  int
	tickRate int
	tooSmall bool

	drop         *dropAnimation
	message      string
	messageTicks int
}

// New creates a game with explicit rules.
func New(id, title string, rules engine.Rules) (*Game, error) {
	match, err := engine.New(rules)
	if err != nil {
		return nil, fmt.Errorf("connect4: %s: %w", id, err)
	}
	g := &Game{
		id:    id,
		title: title,
		rules: rules,
		match: match,
		opts:  CurrentOptions(),
	}
	g.cursor = rules.Columns / 2
	return g, nil
}

// NewVariant creates a game for a builtin variant.
func NewVariant(v Variant) *Game {
	g, err := New(v.ID, v.Title, v.Rules)
	if err != nil {
		panic(err)
	}
	return g
}

// NewCustom creates a game using the configured custom rules.
func NewCustom() *Game {
	g, err := New(CustomID, "Custom", CurrentOptions().Custom)
	if err != nil {
		g = NewVariant(Builtins[0])
		g.id = CustomID
		g.title = "Custom"
	}
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Connect Four: " + g.title
}

// Summary describes the rules, e.g. "6x7, 4 in a row".
func (g *Game) Summary() string {
	return g.rules.String()
}

// Rules returns the rules this game plays by.
func (g *Game) Rules() engine.Rules {
	return g.rules
}

// Reset starts a fresh match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.opts = CurrentOptions()
	g.match.Reset()
	g.cursor = g.rules.Columns / 2
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.drop = nil
	g.message = ""
	g.messageTicks = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to new screen dimensions without touching the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Input is dropped while a token is falling.
	if g.drop != nil {
		if g.drop.advance() {
			return core.StepResult{State: g.State()}
		}
		g.drop = nil
	}

	if g.match.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	cols := g.rules.Columns
	if in.Has(core.ActionLeft) {
		g.cursor = core.Wrap(g.cursor-1, cols)
	}
	if in.Has(core.ActionRight) {
		g.cursor = core.Wrap(g.cursor+1, cols)
	}

	switch {
	case in.HasColumn():
		return g.dropAt(in.Column)
	case in.Has(core.ActionDrop):
		return g.dropAt(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) dropAt(col int) core.StepResult {
	res, err := g.match.RequestMove(col)
	if err != nil {
		msg := rejectMessage(col, err)
		g.flash(msg)
		return core.StepResult{State: g.State(), Message: msg}
	}

	g.cursor = res.Column
	if g.opts.DropAnimation && res.Row > 0 {
		g.drop = newDropAnimation(res.Player, res.Column, res.Row, g.opts.TicksPerRow)
	}
	return core.StepResult{State: g.State()}
}

func rejectMessage(col int, err error) string {
	switch {
	case errors.Is(err, engine.ErrColumnFull):
		return fmt.Sprintf("Column %d is full", col)
	case errors.Is(err, engine.ErrInvalidColumn):
		return fmt.Sprintf("There is no column %d", col)
	case errors.Is(err, engine.ErrGameOver):
		return "The game is over"
	default:
		return err.Error()
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = flashSeconds * g.tickRate
	if g.messageTicks <= 0 {
		g.messageTicks = flashSeconds * core.DefaultConfig().TickRate
	}
}

// State returns the platform-facing status. A match that has ended is
// reported as over only once the final token has landed.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Moves:   g.match.MoveCount(),
		Busy:    g.drop != nil,
		Players: [2]string{g.opts.Players[0].Name, g.opts.Players[1].Name},
	}
	if g.drop == nil && g.match.IsGameOver() {
		st.GameOver = true
		st.Winner = g.match.Winner().Number()
	}
	return st
}

// Cursor returns the selected column.
func (g *Game) Cursor() int {
	return g.cursor
}

// Message returns the current flash notice, if any.
func (g *Game) Message() string {
	return g.message
}

func (g *Game) style(p engine.Owner) PlayerStyle {
	if !p.Valid() {
		return PlayerStyle{Name: p.String()}
	}
	return g.opts.Players[p.Number()-1]
}
