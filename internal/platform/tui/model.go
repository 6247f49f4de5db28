package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/logging"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

const (
	// helpRows is the space under the board reserved for the help bar.
	helpRows = 1
	// maxPendingPicks bounds the column picks waiting for a tick.
	maxPendingPicks = 4
)

// resizer is implemented by games that can re-layout without restarting.
type resizer interface {
	Resize(w, h int)
}

// columnPicker is implemented by games that map screen positions to columns.
type columnPicker interface {
	ColumnAt(x, y int) (int, bool)
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// GameModel is the Bubble Tea model that runs one game and records its results.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	loop       string
	inputFrame core.InputFrame
	picks      []int // Direct column picks, applied one per tick
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	notice     string
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current result has been stored
}

// NewGameModel creates a model for the given game.
// store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		logger:     logging.OrDiscard(logger),
		config:     cfg,
		loop:       uuid.NewString(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

func gameHeight(h int) int {
	if h > helpRows {
		return h - helpRows
	}
	return h
}

func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	m.notice = ""

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if col, ok := m.inputFrame.TakeColumn(); ok {
		m.queuePick(col)
	}

	if m.inputFrame.Has(core.ActionBack) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleMouse turns a left click on a column into a drop.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if picker, ok := m.game.(columnPicker); ok {
		if col, ok := picker.ColumnAt(msg.X, msg.Y); ok {
			m.queuePick(col)
		}
	}
	return m, nil
}

// queuePick holds a column pick until a tick can apply it. Picks beyond
// maxPendingPicks are dropped.
func (m *GameModel) queuePick(col int) {
	if m.gameState.GameOver || len(m.picks) >= maxPendingPicks {
		return
	}
	m.picks = append(m.picks, col)
}

// handleResize keeps the match and re-lays it out for the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick steps the game with the input gathered since the last tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.recorded = false
		m.picks = nil
		m.inputFrame.Clear()
		m.logger.Debug("new game", "variant", m.game.ID())
		return m, tickCmd(m.loop, m.config.TickRate)
	}

	// Picks wait while a token is still falling.
	if len(m.picks) > 0 && !m.gameState.Busy {
		m.inputFrame.SelectColumn(m.picks[0])
		m.picks = m.picks[1:]
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Message != "" {
		m.logger.Debug("move rejected", "variant", m.game.ID(), "reason", result.Message)
	}

	if m.gameState.GameOver && !m.recorded {
		m.recordResult()
		m.recorded = true
		m.picks = nil
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

// recordResult adds the finished game to the standings.
func (m *GameModel) recordResult() {
	st := m.gameState
	m.logger.Info("game over",
		"variant", m.game.ID(),
		"winner", st.Winner,
		"moves", st.Moves,
	)
	if m.store == nil {
		return
	}
	result := storage.NewResult(m.game.ID(), st.Players[0], st.Players[1], st.Winner)
	if err := m.store.RecordResult(result); err != nil {
		m.logger.Warn("could not record result", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.connect4/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		m.notice = "Screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		m.notice = "Screenshot failed"
		return
	}
	m.notice = "Saved " + path
}

// View renders the game screen and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	if m.notice != "" {
		footer = noticeStyle.Render(m.notice)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// GameState returns the state after the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
