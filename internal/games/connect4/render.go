package connect4

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

const (
	cellWidth  = 4 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	headerRows = 5 // Title, players, rules, column labels, cursor
	footerRows = 2 // Status and flash message

	tokenRune   = '●'
	winningRune = '◉'
	cursorRune  = '▼'

	boardColor   = core.ColorBlue
	winningColor = core.ColorBrightGreen
)

type layout struct {
	boardX, boardY int
	boardW, boardH int
}

func (g *Game) boardSize() (int, int) {
	return g.rules.Columns*cellWidth + 1, g.rules.Rows*cellHeight + 1
}

func (g *Game) minSize() (int, int) {
	w, h := g.boardSize()
	return w + 2, headerRows + h + footerRows
}

func (g *Game) layout() layout {
	w, h := g.boardSize()
	x := (g.screenW - w) / 2
	if x < 0 {
		x = 0
	}
	return layout{boardX: x, boardY: headerRows, boardW: w, boardH: h}
}

func (l layout) tokenX(col int) int {
	return l.boardX + col*cellWidth + cellWidth/2
}

func (l layout) tokenY(row int) int {
	return l.boardY + row*cellHeight + 1
}

// columnRect is the clickable area of a column: its label, cursor slot and cells.
func (l layout) columnRect(col int) core.Rect {
	return core.NewRect(l.boardX+col*cellWidth+1, l.boardY-2, cellWidth-1, l.boardH+1)
}

// ColumnAt maps a screen position to the column under it.
func (g *Game) ColumnAt(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	l := g.layout()
	for c := 0; c < g.rules.Columns; c++ {
		if l.columnRect(c).Contains(x, y) {
			return c, true
		}
	}
	return 0, false
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHeader(dst, l)
	g.renderBoard(dst, l)
	g.renderFooter(dst, l)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	w, h := g.minSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h))
}

func (g *Game) renderHeader(dst *core.Screen, l layout) {
	dst.DrawTextCentered(0, g.Title())

	p1, p2 := g.opts.Players[0], g.opts.Players[1]
	left := string(tokenRune) + " " + p1.Name
	sep := "  vs  "
	right := string(tokenRune) + " " + p2.Name
	total := utf8.RuneCountInString(left + sep + right)
	x := (g.screenW - total) / 2
	dst.DrawTextColor(x, 1, left, p1.Color)
	x += utf8.RuneCountInString(left)
	dst.DrawText(x, 1, sep)
	x += utf8.RuneCountInString(sep)
	dst.DrawTextColor(x, 1, right, p2.Color)

	dst.DrawTextCenteredColor(2, g.rules.String(), core.ColorGray)

	over := g.match.IsGameOver()
	current := g.style(g.match.CurrentPlayer())
	full := g.match.State().ColumnFull
	for c := 0; c < g.rules.Columns; c++ {
		color := core.ColorDefault
		switch {
		case full[c]:
			color = core.ColorGray
		case c == g.cursor && !over:
			color = current.Color
		}
		dst.SetColor(l.tokenX(c), l.boardY-2, rune('0'+c%10), color)
	}

	if !over && g.drop == nil {
		dst.SetColor(l.tokenX(g.cursor), l.boardY-1, cursorRune, current.Color)
	}
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	rows, cols := g.rules.Rows, g.rules.Columns

	frame := core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH)
	dst.DrawBoxColor(frame, boardColor)

	for r := 1; r < rows; r++ {
		y := l.boardY + r*cellHeight
		dst.DrawHLine(l.boardX+1, y, l.boardW-2, '─', boardColor)
	}
	for c := 1; c < cols; c++ {
		x := l.boardX + c*cellWidth
		dst.DrawVLine(x, l.boardY+1, l.boardH-2, '│', boardColor)
		dst.SetColor(x, l.boardY, '┬', boardColor)
		dst.SetColor(x, frame.Bottom()-1, '┴', boardColor)
	}

	// Junctions where inner lines meet
	for r := 1; r < rows; r++ {
		y := l.boardY + r*cellHeight
		dst.SetColor(l.boardX, y, '├', boardColor)
		dst.SetColor(frame.Right()-1, y, '┤', boardColor)
		for c := 1; c < cols; c++ {
			dst.SetColor(l.boardX+c*cellWidth, y, '┼', boardColor)
		}
	}

	line, won := g.match.WinningLine()
	showLine := won && g.drop == nil
	grid := g.match.Grid()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			owner, _ := grid.CellOwner(r, c)
			if owner == engine.Empty {
				continue
			}
			if g.drop != nil && g.drop.covers(r, c) {
				continue
			}
			ch, color := tokenRune, g.style(owner).Color
			if showLine && line.Contains(engine.Cell{Row: r, Column: c}) {
				ch, color = winningRune, winningColor
			}
			dst.SetColor(l.tokenX(c), l.tokenY(r), ch, color)
		}
	}

	if g.drop != nil {
		dst.SetColor(l.tokenX(g.drop.column), l.tokenY(g.drop.row()), tokenRune, g.style(g.drop.player).Color)
	}
}

func (g *Game) renderFooter(dst *core.Screen, l layout) {
	y := l.boardY + l.boardH
	text, color := g.statusText()
	dst.DrawTextCenteredColor(y, text, color)
	if g.message != "" {
		dst.DrawTextCenteredColor(y+1, g.message, core.ColorBrightRed)
	}
}

// statusText is the line under the board, e.g. "Player 1's turn...".
func (g *Game) statusText() (string, core.Color) {
	if g.drop != nil {
		s := g.style(g.drop.player)
		return s.Name + " drops...", s.Color
	}
	switch g.match.Outcome() {
	case engine.Won:
		return g.style(g.match.Winner()).Name + " won!... Press R to play again", winningColor
	case engine.Tied:
		return "Tie Game... Press R to play again", core.ColorDefault
	default:
		s := g.style(g.match.CurrentPlayer())
		return s.Name + "'s turn...", s.Color
	}
}
