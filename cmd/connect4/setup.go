package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/logging"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// app holds what every command needs once flags are parsed.
var app struct {
	cfg     config.Connect4Config
	logger  *log.Logger
	logFile *os.File
}

// setup loads the config, builds the logger and applies game options.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	app.cfg = cfg

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		app.logFile = f
		out = f
	}

	logger, err := logging.New(out, flagLogLevel, "connect4")
	if err != nil {
		return err
	}
	app.logger = logger

	connect4.SetOptions(gameOptions(cfg))
	logger.Debug("config loaded", "custom", cfg.Board.Rules().String(), "tick_rate", cfg.UI.TickRate)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if app.logFile != nil {
		return app.logFile.Close()
	}
	return nil
}

// gameOptions maps the config onto the game's presentation options.
func gameOptions(cfg config.Connect4Config) connect4.Options {
	return connect4.Options{
		Players: [2]connect4.PlayerStyle{
			{Name: cfg.Players.One.Name, Color: cfg.Players.One.ColorValue()},
			{Name: cfg.Players.Two.Name, Color: cfg.Players.Two.ColorValue()},
		},
		DropAnimation: cfg.UI.DropAnimation,
		TicksPerRow:   cfg.UI.AnimationTicks,
		Custom:        cfg.Board.Rules(),
	}
}

// tuiLogger is the logger handed to Bubble Tea models. Writing to stderr
// would tear the alternate screen, so logs are kept only with --log-file.
func tuiLogger() *log.Logger {
	if app.logFile != nil {
		return app.logger
	}
	return nil
}

func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return app.cfg.UI.TickRate
}

// runtimeConfig sizes the game for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tickRate()
	return cfg
}

// openStore opens the standings database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		app.logger.Warn("could not open standings database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		app.logger.Warn("could not close standings database", "error", err)
	}
}
