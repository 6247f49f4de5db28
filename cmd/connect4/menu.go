package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the variant menu",
	Long: `Opens an interactive menu to pick a variant. Finished games return
to the menu; Tab shows the standings.`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	return tui.RunSession(store, tuiLogger(), runtimeConfig())
}
