package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/engine"
)

var flagDropVariant string

var dropCmd = &cobra.Command{
	Use:   "drop <column>...",
	Short: "Apply a move sequence and print the board",
	Long: `Plays the given columns in order, starting with player 1, then
prints the board and the outcome. Columns may be separate arguments or
comma separated. Rejected moves are reported and skipped.

Examples:
  connect4 drop 3 3 4 4 5 5 6
  connect4 drop 0,0,0,0,0,0,0 --variant classic
  connect4 drop 2 2 3 --rows 4 --columns 5 --run 3 --log-level debug`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().StringVarP(&flagDropVariant, "variant", "v", "classic", "Variant whose rules to use")
	addRuleFlags(dropCmd)
}

// parseColumns accepts "3 4" as well as "3,4".
func parseColumns(args []string) ([]int, error) {
	var cols []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			c, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid column %q", field)
			}
			cols = append(cols, c)
		}
	}
	return cols, nil
}

func runDrop(cmd *cobra.Command, args []string) error {
	cols, err := parseColumns(args)
	if err != nil {
		return err
	}

	base, err := variantRules(flagDropVariant)
	if err != nil {
		return err
	}
	rules := overrideRules(cmd, base)
	warnUnreachable(rules)

	game, err := engine.New(rules)
	if err != nil {
		return err
	}

	playMoves(os.Stdout, app.logger, game, cols)
	return nil
}

// playMoves applies cols in order and writes the board and outcome to w.
func playMoves(w io.Writer, logger *log.Logger, game *engine.Game, cols []int) {
	fmt.Fprintf(w, "Rules: %s\n", game.Rules())

	for i, col := range cols {
		res, err := game.RequestMove(col)
		if err != nil {
			reason := err.Error()
			switch {
			case errors.Is(err, engine.ErrColumnFull):
				reason = "column full"
			case errors.Is(err, engine.ErrInvalidColumn):
				reason = "no such column"
			case errors.Is(err, engine.ErrGameOver):
				reason = "game over"
			}
			fmt.Fprintf(w, "move %d: column %d rejected (%s)\n", i+1, col, reason)
			logger.Debug("move rejected", "move", i+1, "column", col, "error", err)
			continue
		}
		logger.Debug("move", "n", i+1, "result", res.String())
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, game.Grid().String())
	fmt.Fprintln(w)

	switch game.Outcome() {
	case engine.Won:
		line, _ := game.WinningLine()
		fmt.Fprintf(w, "%v wins: %v\n", game.Winner(), line.Cells)
	case engine.Tied:
		fmt.Fprintln(w, "Tie game")
	default:
		fmt.Fprintf(w, "In progress after %d moves, %v to move\n", game.MoveCount(), game.CurrentPlayer())
	}
}
