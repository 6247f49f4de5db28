package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30}
}

// instantDrops turns the drop animation off for the duration of a test.
func instantDrops(t *testing.T) {
	t.Helper()
	opts := connect4.DefaultOptions()
	opts.DropAnimation = false
	connect4.SetOptions(opts)
	t.Cleanup(func() { connect4.SetOptions(connect4.DefaultOptions()) })
}

func newClassicModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	instantDrops(t)

	v, _ := connect4.Lookup("classic")
	m := NewGameModel(connect4.NewVariant(v), store, nil, testConfig())
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

// play sends each key followed by a tick.
func play(t *testing.T, m GameModel, keys ...string) GameModel {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
		m = update(t, m, TickMsg{Loop: m.loop})
	}
	return m
}

func TestGameModelDigitDrops(t *testing.T) {
	m := newClassicModel(t, nil)

	m = play(t, m, "3")

	if got := m.GameState().Moves; got != 1 {
		t.Errorf("Moves = %d, want 1", got)
	}
	if !strings.Contains(m.View(), "Player 2's turn") {
		t.Error("status should move to player 2")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := newClassicModel(t, nil)

	m = update(t, m, keyMsg("3"))
	m = update(t, m, TickMsg{Loop: "closed-game"})

	if got := m.GameState().Moves; got != 0 {
		t.Errorf("Moves = %d after stale tick, want 0", got)
	}
}

func TestGameModelRecordsWinOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "standings.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newClassicModel(t, store)
	m = play(t, m, "0", "1", "0", "1", "0", "1", "0")

	st := m.GameState()
	if !st.GameOver || st.Winner != 1 {
		t.Fatalf("state = %+v, want player 1 win", st)
	}

	// Extra ticks after the end must not count the game again
	m = update(t, m, TickMsg{Loop: m.loop})
	m = update(t, m, TickMsg{Loop: m.loop})

	winner, err := store.PlayerRecord("classic", "Player 1")
	if err != nil {
		t.Fatalf("PlayerRecord: %v", err)
	}
	if winner.Wins != 1 || winner.Games() != 1 {
		t.Errorf("Player 1 = %+v, want one win", winner)
	}

	loser, _ := store.PlayerRecord("classic", "Player 2")
	if loser.Losses != 1 {
		t.Errorf("Player 2 losses = %d, want 1", loser.Losses)
	}
}

func TestGameModelRestart(t *testing.T) {
	m := newClassicModel(t, nil)
	m = play(t, m, "0", "1", "0", "1", "0", "1", "0")
	if !m.GameState().GameOver {
		t.Fatal("game should be over")
	}

	m = play(t, m, "r")

	if st := m.GameState(); st.GameOver || st.Moves != 0 {
		t.Errorf("state after restart = %+v", st)
	}
}

func TestGameModelBack(t *testing.T) {
	m := newClassicModel(t, nil)
	m = update(t, m, keyMsg("esc"))
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc should return to the menu")
	}

	m = newClassicModel(t, nil)
	m.standalone = true
	m = update(t, m, keyMsg("esc"))
	if !m.IsQuitting() {
		t.Error("esc should quit a standalone game")
	}
}

func TestGameModelMouseClick(t *testing.T) {
	m := newClassicModel(t, nil)
	game := m.game.(*connect4.Game)

	x, y := -1, -1
	for yy := 0; yy < m.screen.Height() && x < 0; yy++ {
		for xx := 0; xx < m.screen.Width(); xx++ {
			if col, ok := game.ColumnAt(xx, yy); ok && col == 2 {
				x, y = xx, yy
				break
			}
		}
	}
	if x < 0 {
		t.Fatal("column 2 not found on screen")
	}

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{Loop: m.loop})

	if got := m.GameState().Moves; got != 1 {
		t.Errorf("Moves = %d after click, want 1", got)
	}
}

func TestGameModelResizeKeepsMatch(t *testing.T) {
	m := newClassicModel(t, nil)
	m = play(t, m, "3")

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = update(t, m, TickMsg{Loop: m.loop})

	if got := m.GameState().Moves; got != 1 {
		t.Errorf("Moves = %d after resize, want 1", got)
	}
}

func TestGameModelKeepsEveryPickInOneTick(t *testing.T) {
	m := newClassicModel(t, nil)

	// Both digits arrive before the next tick
	m = update(t, m, keyMsg("0"))
	m = update(t, m, keyMsg("1"))
	m = update(t, m, TickMsg{Loop: m.loop})
	m = update(t, m, TickMsg{Loop: m.loop})

	snap := m.game.(*connect4.Game).Snapshot()
	if snap.Moves != 2 {
		t.Fatalf("Moves = %d, want 2", snap.Moves)
	}
	if !strings.HasSuffix(snap.Board, "X O . . . . .\n0 1 2 3 4 5 6") {
		t.Errorf("board =\n%s\nwant player 1 in column 0 and player 2 in column 1", snap.Board)
	}
}

func TestGameModelPicksWaitForFallingToken(t *testing.T) {
	connect4.SetOptions(connect4.DefaultOptions())
	v, _ := connect4.Lookup("classic")
	m := NewGameModel(connect4.NewVariant(v), nil, nil, testConfig())
	m.Init()

	m = update(t, m, keyMsg("3"))
	m = update(t, m, keyMsg("4"))

	for i := 0; i < 60 && m.GameState().Moves < 2; i++ {
		m = update(t, m, TickMsg{Loop: m.loop})
	}

	snap := m.game.(*connect4.Game).Snapshot()
	if snap.Moves != 2 {
		t.Fatalf("Moves = %d, want 2 once the first token landed", snap.Moves)
	}
	if !strings.HasSuffix(snap.Board, ". . . X O . .\n0 1 2 3 4 5 6") {
		t.Errorf("board =\n%s", snap.Board)
	}
}

func TestGameModelBoundsPendingPicks(t *testing.T) {
	m := newClassicModel(t, nil)

	for i := 0; i < maxPendingPicks+3; i++ {
		m = update(t, m, keyMsg("2"))
	}

	if len(m.picks) != maxPendingPicks {
		t.Errorf("pending picks = %d, want %d", len(m.picks), maxPendingPicks)
	}
}
