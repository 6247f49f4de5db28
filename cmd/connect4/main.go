// connect4 is a terminal Connect Four for two players sharing a keyboard.
//
// Usage:
//
//	connect4 list               - List available variants
//	connect4 play [variant]     - Play a variant (menu when omitted)
//	connect4 menu               - Variant picker with standings
//	connect4 serve              - Start SSH server, one game per connection
//	connect4 stats [variant]    - Show player standings
//	connect4 drop <col>...      - Play a move sequence headlessly
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.connect4, ./configs)
//	--db <path>         - Standings database (default: ~/.connect4/standings.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file (recommended while the TUI runs)
//	--fps <rate>        - Tick rate override
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the variants
	_ "github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagFPS      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four in your terminal",
	Long: `Connect Four for two players sharing one terminal, or one SSH
connection each.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker with standings
  serve    - Start SSH server
  stats    - View player standings
  drop     - Apply a move sequence and print the board

Examples:
  connect4 play
  connect4 play modern --p1 Alice --p2 Bob
  connect4 play classic --rows 8 --columns 9
  connect4 serve --ssh :2222
  connect4 drop 3 3 4 4 5 5 6`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.connect4/standings.db", "Path to standings database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file instead of stderr")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dropCmd)
}
