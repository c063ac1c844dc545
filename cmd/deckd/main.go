// Deckd is a declarative button deck daemon.
//
// It loads a YAML button tree describing commands, nested menus, and
// toggles, renders it as a navigable grid in the terminal, and runs the
// configured commands when buttons are pressed. Toggle buttons probe
// system state before flipping it and verify afterwards.
//
// Usage:
//
//	deckd [command] [flags]
//
// Running without arguments starts the deck.
// See 'deckd --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/averill/deckd/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deckd",
	Short: "Declarative button deck daemon",
	Long: `A button deck daemon driven by a declarative YAML configuration.

The config declares a tree of commands, menus, and toggles; deckd lays it
out on a fixed grid, runs commands on press, and keeps toggle state in
sync with the system by probing before and after each flip.

If no command is specified, the deck starts directly.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeck(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deckd %s (commit: %s)\n", version.Version, version.Commit)
	},
}
