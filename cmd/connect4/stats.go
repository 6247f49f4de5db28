package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsReset bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "View player standings",
	Long: `Shows wins, losses and ties per player. Without a variant the
totals across all variants are shown.

Examples:
  connect4 stats
  connect4 stats modern --limit 5
  connect4 stats mini --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&flagStatsLimit, "limit", "n", 10, "Number of players to show")
	statsCmd.Flags().BoolVar(&flagStatsReset, "reset", false, "Clear the standings instead of showing them")
}

func runStats(_ *cobra.Command, args []string) error {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q (run 'connect4 list')", variant)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if flagStatsReset {
		if err := store.ClearStandings(variant); err != nil {
			return err
		}
		fmt.Printf("Standings cleared for %s.\n", variantLabel(variant))
		return nil
	}

	standings, err := store.TopStandings(variant, flagStatsLimit)
	if err != nil {
		return err
	}

	if len(standings) == 0 {
		fmt.Printf("No games recorded for %s yet.\n", variantLabel(variant))
		return nil
	}

	fmt.Printf("Standings: %s\n\n", variantLabel(variant))

	nameLen := 6
	for _, s := range standings {
		nameLen = max(nameLen, len(s.Player))
	}

	fmt.Printf("  %-4s  %-*s  %4s  %4s  %4s  %6s\n", "Rank", nameLen, "Player", "W", "L", "T", "Win %")
	fmt.Printf("  %-4s  %-*s  %4s  %4s  %4s  %6s\n", "----", nameLen, "------", "-", "-", "-", "-----")

	for i, s := range standings {
		fmt.Printf("  %-4d  %-*s  %4d  %4d  %4d  %5.1f%%\n",
			i+1, nameLen, s.Player, s.Wins, s.Losses, s.Ties, s.WinRate()*100)
	}

	if variant == "" {
		variants, err := store.Variants()
		if err == nil && len(variants) > 0 {
			fmt.Printf("\nVariants played: %v\n", variants)
		}
	}
	return nil
}

func variantLabel(variant string) string {
	if variant == "" {
		return "all variants"
	}
	return variant
}
