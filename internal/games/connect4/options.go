package connect4

import (
	"sync"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

// PlayerStyle is how a player is shown on the board.
type PlayerStyle struct {
	Name  string
	Color core.Color
}

// Options are the presentation settings shared by every new game.
type Options struct {
	Players [2]PlayerStyle
	// DropAnimation makes placed tokens fall row by row.
	DropAnimation bool
	// TicksPerRow is how many ticks a falling token spends on each row.
	TicksPerRow int
	// Custom holds the rules of the "custom" variant.
	Custom engine.Rules
}

// DefaultOptions returns red vs yellow with animation on and classic custom rules.
func DefaultOptions() Options {
	return Options{
		Players: [2]PlayerStyle{
			{Name: "Player 1", Color: core.ColorRed},
			{Name: "Player 2", Color: core.ColorYellow},
		},
		DropAnimation: true,
		TicksPerRow:   2,
		Custom:        engine.ClassicRules(),
	}
}

var (
	optsMu  sync.RWMutex
	options = DefaultOptions()
)

// SetOptions replaces the settings used by games created afterwards.
// Blank names fall back to the defaults.
func SetOptions(o Options) {
	def := DefaultOptions()
	for i := range o.Players {
		if o.Players[i].Name == "" {
			o.Players[i].Name = def.Players[i].Name
		}
	}
	if o.TicksPerRow < 1 {
		o.TicksPerRow = 1
	}
	if o.Custom.Validate() != nil {
		o.Custom = def.Custom
	}

	optsMu.Lock()
	defer optsMu.Unlock()
	options = o
}

// CurrentOptions returns the settings new games start with.
func CurrentOptions() Options {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return options
}
