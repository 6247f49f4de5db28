package connect4

import (
	"github.com/vovakirdan/tui-connect4/internal/engine"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

// Variant is a named rule set.
type Variant struct {
	ID    string
	Title string
	Rules engine.Rules
}

// CustomID is the variant whose rules come from configuration.
const CustomID = "custom"

// Builtins lists the fixed variants in menu order.
var Builtins = []Variant{
	{
		ID:    "classic",
		Title: "Classic",
		Rules: engine.ClassicRules(),
	},
	{
		ID:    "modern",
		Title: "Modern (diagonals)",
		Rules: engine.Rules{Rows: 6, Columns: 7, RunLength: 4, Diagonals: true},
	},
	{
		ID:    "five",
		Title: "Five in a Row",
		Rules: engine.Rules{Rows: 7, Columns: 9, RunLength: 5, Diagonals: true},
	},
	{
		ID:    "mini",
		Title: "Mini",
		Rules: engine.Rules{Rows: 4, Columns: 5, RunLength: 3},
	},
}

func init() {
	for _, v := range Builtins {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
	registry.Register(CustomID, func() registry.Game {
		return NewCustom()
	})
}

// Lookup finds a builtin variant by ID.
func Lookup(id string) (Variant, bool) {
	for _, v := range Builtins {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
