package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	// Given the embedded YAML shipped with the binary
	// When it is parsed
	cfg := Embedded()

	// Then it agrees with the hard-coded fallback and is valid
	assert.Equal(t, DefaultConnect4Config(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, engine.ClassicRules(), cfg.Board.Rules())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Embedded(), cfg)
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, "board:\n  rows: 5\n  diagonals: true\nplayers:\n  two:\n    name: Bob\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Rows)
	assert.Equal(t, engine.DefaultColumns, cfg.Board.Columns, "unset keys keep their defaults")
	assert.True(t, cfg.Board.Diagonals)
	assert.Equal(t, "Bob", cfg.Players.Two.Name)
	assert.Equal(t, "yellow", cfg.Players.Two.Color)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "board: [not, a, map")
	_, err = Load(broken)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  run_length: 1\n")
	_, err = Load(invalid)
	require.ErrorIs(t, err, engine.ErrInvalidRunLength)
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	// Given only a local configs/ file
	writeFile(t, filepath.Join(work, "configs", fileName), "board:\n  rows: 4\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Board.Rows)

	// When a user file appears it wins over the local one
	writeFile(t, filepath.Join(home, ".connect4", fileName), "board:\n  rows: 8\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Rows)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Connect4Config)
		ok     bool
	}{
		{"defaults", func(*Connect4Config) {}, true},
		{"zero rows", func(c *Connect4Config) { c.Board.Rows = 0 }, false},
		{"too many columns", func(c *Connect4Config) { c.Board.Columns = MaxColumns + 1 }, false},
		{"run length one", func(c *Connect4Config) { c.Board.RunLength = 1 }, false},
		{"blank name", func(c *Connect4Config) { c.Players.One.Name = "  " }, false},
		{"same names", func(c *Connect4Config) { c.Players.Two.Name = "player 1" }, false},
		{"unknown color", func(c *Connect4Config) { c.Players.Two.Color = "plaid" }, false},
		{"zero animation ticks", func(c *Connect4Config) { c.UI.AnimationTicks = 0 }, false},
		{"tick rate too high", func(c *Connect4Config) { c.UI.TickRate = MaxTickRate + 1 }, false},
		{"unreachable run is allowed", func(c *Connect4Config) { c.Board.RunLength = 9 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConnect4Config()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPlayerColorValue(t *testing.T) {
	assert.Equal(t, core.ColorRed, PlayerConfig{Color: "red"}.ColorValue())
	assert.Equal(t, core.ColorDefault, PlayerConfig{Color: "nope"}.ColorValue())
}

func TestLoadServerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadServerConfig()

		require.NoError(t, err)
		assert.Equal(t, ":23234", cfg.Address)
		assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
		assert.Empty(t, cfg.HostKeyPath)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("CONNECT4_SSH_ADDR", "127.0.0.1:2222")
		t.Setenv("CONNECT4_IDLE_TIMEOUT", "5m")
		t.Setenv("CONNECT4_DB", "/tmp/standings.db")

		cfg, err := LoadServerConfig()

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:2222", cfg.Address)
		assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
		assert.Equal(t, "/tmp/standings.db", cfg.DBPath)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("CONNECT4_IDLE_TIMEOUT", "soon")

		_, err := LoadServerConfig()
		require.Error(t, err)
	})
}

func TestServerUsageListsVariables(t *testing.T) {
	assert.Contains(t, ServerUsage(), "CONNECT4_SSH_ADDR")
}
