package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-connect4/internal/engine"
)

//go:embed defaults/connect4.yaml
var defaultConnect4YAML []byte

// DefaultConnect4Config returns the hard-coded configuration used when even
// the embedded YAML cannot be parsed.
func DefaultConnect4Config() Connect4Config {
	return Connect4Config{
		Board: BoardConfig{
			Rows:      engine.DefaultRows,
			Columns:   engine.DefaultColumns,
			RunLength: engine.DefaultRunLength,
			Diagonals: false,
		},
		Players: PlayersConfig{
			One: PlayerConfig{Name: "Player 1", Color: "red"},
			Two: PlayerConfig{Name: "Player 2", Color: "yellow"},
		},
		UI: UIConfig{
			DropAnimation:  true,
			AnimationTicks: 2,
			TickRate:       30,
		},
	}
}
