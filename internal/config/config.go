// Package config provides YAML-based game configuration and
// environment-based server configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

// Limits keep the board drawable in a terminal.
const (
	MaxRows     = 12
	MaxColumns  = 16
	MaxTickRate = 120
)

// Connect4Config contains all configuration for the game.
type Connect4Config struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	UI      UIConfig      `yaml:"ui"`
}

// BoardConfig defines the rules of the "custom" variant.
type BoardConfig struct {
	Rows      int  `yaml:"rows"`
	Columns   int  `yaml:"columns"`
	RunLength int  `yaml:"run_length"`
	Diagonals bool `yaml:"diagonals"`
}

// PlayersConfig names and colors both players.
type PlayersConfig struct {
	One PlayerConfig `yaml:"one"`
	Two PlayerConfig `yaml:"two"`
}

// PlayerConfig defines how one player is shown.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // red, yellow, bright_blue, ...
}

// UIConfig controls animation and timing.
type UIConfig struct {
	DropAnimation  bool `yaml:"drop_animation"`
	AnimationTicks int  `yaml:"animation_ticks"` // Ticks a falling token spends per row
	TickRate       int  `yaml:"tick_rate"`       // Ticks per second
}

// Rules converts the board section into engine rules.
func (b BoardConfig) Rules() engine.Rules {
	return engine.Rules{
		Rows:      b.Rows,
		Columns:   b.Columns,
		RunLength: b.RunLength,
		Diagonals: b.Diagonals,
	}
}

// ColorValue resolves the configured color name.
func (p PlayerConfig) ColorValue() core.Color {
	c, _ := core.ParseColor(p.Color)
	return c
}

// Validate checks the whole configuration and reports every problem found.
func (c Connect4Config) Validate() error {
	var errs []error

	if err := c.Board.Rules().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("board: %w", err))
	}
	if c.Board.Rows > MaxRows {
		errs = append(errs, fmt.Errorf("board: rows %d exceeds %d", c.Board.Rows, MaxRows))
	}
	if c.Board.Columns > MaxColumns {
		errs = append(errs, fmt.Errorf("board: columns %d exceeds %d", c.Board.Columns, MaxColumns))
	}

	players := []struct {
		label string
		cfg   PlayerConfig
	}{
		{"one", c.Players.One},
		{"two", c.Players.Two},
	}
	for _, p := range players {
		if strings.TrimSpace(p.cfg.Name) == "" {
			errs = append(errs, fmt.Errorf("players.%s: name is empty", p.label))
		}
		if _, ok := core.ParseColor(p.cfg.Color); !ok {
			errs = append(errs, fmt.Errorf("players.%s: unknown color %q", p.label, p.cfg.Color))
		}
	}
	if strings.EqualFold(strings.TrimSpace(c.Players.One.Name), strings.TrimSpace(c.Players.Two.Name)) {
		errs = append(errs, fmt.Errorf("players: both players are named %q", c.Players.One.Name))
	}

	if c.UI.AnimationTicks < 1 {
		errs = append(errs, fmt.Errorf("ui: animation_ticks must be at least 1, got %d", c.UI.AnimationTicks))
	}
	if c.UI.TickRate < 1 || c.UI.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("ui: tick_rate must be in [1, %d], got %d", MaxTickRate, c.UI.TickRate))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
