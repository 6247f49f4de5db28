package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/engine"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

// Rule overrides shared by play and drop
var (
	flagRows      int
	flagColumns   int
	flagRun       int
	flagDiagonals bool
)

var (
	flagPlayer1 string
	flagPlayer2 string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Starts a hot-seat game in the terminal. Without a variant the
variant menu opens instead.

Rule flags turn the game into a "custom" one so its standings are
kept apart from the builtin variants.

Controls:
  ←/→ or a/d    move the cursor
  space/enter   drop a token
  0-9           drop into that column
  mouse click   drop into the clicked column
  r             restart, esc back, ctrl+s screenshot, ? help

Examples:
  connect4 play
  connect4 play mini
  connect4 play modern --p1 Alice --p2 Bob
  connect4 play --rows 8 --columns 10 --run 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addRuleFlags(playCmd)
	playCmd.Flags().StringVar(&flagPlayer1, "p1", "", "Name of player 1")
	playCmd.Flags().StringVar(&flagPlayer2, "p2", "", "Name of player 2")
}

func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows")
	cmd.Flags().IntVar(&flagColumns, "columns", 0, "Board columns")
	cmd.Flags().IntVar(&flagRun, "run", 0, "Tokens in a row needed to win")
	cmd.Flags().BoolVar(&flagDiagonals, "diagonals", false, "Count diagonal runs")
}

func ruleFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"rows", "columns", "run", "diagonals"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// variantRules returns the rules of a registered variant.
func variantRules(id string) (engine.Rules, error) {
	if id == connect4.CustomID {
		return connect4.CurrentOptions().Custom, nil
	}
	v, ok := connect4.Lookup(id)
	if !ok {
		return engine.Rules{}, fmt.Errorf("unknown variant %q (run 'connect4 list')", id)
	}
	return v.Rules, nil
}

// overrideRules applies the rule flags that were set on top of base.
func overrideRules(cmd *cobra.Command, base engine.Rules) engine.Rules {
	if cmd.Flags().Changed("rows") {
		base.Rows = flagRows
	}
	if cmd.Flags().Changed("columns") {
		base.Columns = flagColumns
	}
	if cmd.Flags().Changed("run") {
		base.RunLength = flagRun
	}
	if cmd.Flags().Changed("diagonals") {
		base.Diagonals = flagDiagonals
	}
	return base
}

func warnUnreachable(rules engine.Rules) {
	if !rules.Reachable() {
		app.logger.Warn("run length does not fit the board, every game will tie", "rules", rules.String())
	}
}

// applyPlayerNames applies --p1/--p2. Standings are keyed by name, so
// both players must differ, compared case-insensitively like the config.
func applyPlayerNames() error {
	if flagPlayer1 == "" && flagPlayer2 == "" {
		return nil
	}
	opts := connect4.CurrentOptions()
	if flagPlayer1 != "" {
		opts.Players[0].Name = flagPlayer1
	}
	if flagPlayer2 != "" {
		opts.Players[1].Name = flagPlayer2
	}
	one, two := strings.TrimSpace(opts.Players[0].Name), strings.TrimSpace(opts.Players[1].Name)
	if strings.EqualFold(one, two) {
		return fmt.Errorf("both players are named %q; pick distinct names with --p1 and --p2", one)
	}
	connect4.SetOptions(opts)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := applyPlayerNames(); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	if len(args) == 0 && !ruleFlagsChanged(cmd) {
		return tui.RunSession(store, tuiLogger(), cfg)
	}

	variant := "classic"
	if len(args) == 1 {
		variant = args[0]
	}

	var game registry.Game
	if ruleFlagsChanged(cmd) {
		base, err := variantRules(variant)
		if err != nil {
			return err
		}
		rules := overrideRules(cmd, base)
		warnUnreachable(rules)
		g, err := connect4.New(connect4.CustomID, rules.String(), rules)
		if err != nil {
			return err
		}
		game = g
	} else {
		g, err := registry.Create(variant)
		if err != nil {
			return fmt.Errorf("%w (run 'connect4 list')", err)
		}
		game = g
	}

	app.logger.Debug("starting game", "variant", game.ID(), "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	return tui.Run(game, store, tuiLogger(), cfg)
}
