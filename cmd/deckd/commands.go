package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/config"
	"github.com/averill/deckd/internal/deck"
	"github.com/averill/deckd/internal/logging"
	"github.com/averill/deckd/internal/probe"
	"github.com/averill/deckd/internal/settings"
	"github.com/averill/deckd/internal/state"
	"github.com/averill/deckd/internal/toggle"
	"github.com/averill/deckd/internal/trigger"
	"github.com/averill/deckd/internal/ui"
)

var settingsPath string

func init() {
	// Persistent flags feed the settings loader; only explicitly set flags
	// override file and environment values.
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file (default: OS config dir)")
	rootCmd.PersistentFlags().String("buttons", "", "Button tree file (default: OS config dir)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("rows", 3, "Grid rows")
	rootCmd.PersistentFlags().Int("columns", 5, "Grid columns")
	rootCmd.PersistentFlags().Bool("trigger", false, "Enable the remote trigger server")
	rootCmd.PersistentFlags().Int("trigger-port", 8667, "Remote trigger server port")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(probeCmd)
}

// runCmd starts the deck; also the root command's default behavior.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the deck",
	Long: `Load the button tree and start the interactive deck.

The deck occupies the terminal until quit. When watching is enabled the
tree reloads on config changes; when the trigger server is enabled,
remote clients can inject presses over websocket.`,
	Example: `  # Start with defaults (~/.config/deckd/buttons.yaml)
  deckd

  # Start with an explicit tree and a bigger grid
  deckd run --buttons ./buttons.yaml --rows 4 --columns 6

  # Accept remote presses
  deckd run --trigger --trigger-port 9000`,
	RunE: runDeck,
}

func runDeck(cmd *cobra.Command, args []string) error {
	s, err := settings.Load(settingsPath, cmd.Flags())
	if err != nil {
		return err
	}

	if err := logging.Initialize(s.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	root, err := config.Load(s.ButtonsPath)
	if err != nil {
		return err
	}
	for _, warning := range config.Validate(root) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}

	store := state.NewStore()
	orch := toggle.NewOrchestrator(store, s.ProbeConfig())
	nav := deck.NewNavigator(root, s.Grid.Rows, s.Grid.Columns, store, orch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if s.Watch {
		watcher, err := config.NewWatcher(s.ButtonsPath, func(m *button.Menu) {
			nav.Reset(m)
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", s.ButtonsPath, err)
		}
		go watcher.Run(ctx)
	}

	if s.Trigger.Enabled {
		server := trigger.New(trigger.Config{
			Port:      s.Trigger.Port,
			Advertise: s.Trigger.Advertise,
		}, nav, s.Grid.Rows, s.Grid.Columns)
		go func() {
			if err := server.Run(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trigger server: %v\n", err)
			}
		}()
	}

	return ui.Run(nav, store, s.Grid.Rows, s.Grid.Columns)
}

// validateCmd checks the button tree without starting the deck.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the button tree",
	Long: `Parse the button tree and report problems without starting the deck.

Structural errors (unknown types, missing commands) fail the command;
advisory findings (empty menus, duplicate names) print as warnings.`,
	Example: `  deckd validate
  deckd validate --buttons ./buttons.yaml`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := settings.Load(settingsPath, cmd.Flags())
	if err != nil {
		return err
	}

	root, err := config.Load(s.ButtonsPath)
	if err != nil {
		return err
	}

	warnings := config.Validate(root)
	for _, warning := range warnings {
		fmt.Printf("warning: %s\n", warning)
	}

	counts := countButtons(root)
	fmt.Printf("%s: ok (%d commands, %d toggles, %d menus", s.ButtonsPath,
		counts.commands, counts.toggles, counts.menus)
	if len(warnings) > 0 {
		fmt.Printf(", %d warnings", len(warnings))
	}
	fmt.Println(")")
	return nil
}

// probeCmd runs one toggle's probe and prints the verdict.
var probeCmd = &cobra.Command{
	Use:   "probe <toggle-name>",
	Short: "Run a toggle's state probe",
	Long: `Run the probe command of the named toggle once and print how deckd
classifies the result. Useful when tuning probe commands and output
indicators.`,
	Example: `  deckd probe WiFi
  deckd probe "VPN Connection" --buttons ./buttons.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	s, err := settings.Load(settingsPath, cmd.Flags())
	if err != nil {
		return err
	}

	if err := logging.Initialize(s.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	root, err := config.Load(s.ButtonsPath)
	if err != nil {
		return err
	}

	t := findToggle(root, args[0])
	if t == nil {
		return fmt.Errorf("no toggle named %q in %s", args[0], s.ButtonsPath)
	}
	if !t.HasProbe() {
		return fmt.Errorf("toggle %q has no probe command", t.Name)
	}

	fmt.Printf("Probing %q: %s\n\n", t.Name, t.ProbeCommand)

	result := probe.RunWithConfig(cmd.Context(), t.ProbeCommand, t.ProbeArgs, t.Name, s.ProbeConfig())
	switch {
	case result.IsSuccess():
		fmt.Printf("✓ on (exit code %d)\n", result.ExitCode)
	case result.IsCommandFailure():
		fmt.Printf("✗ off (exit code %d)\n", result.ExitCode)
	default:
		fmt.Println("? unknown (probe did not run to completion)")
	}
	if result.Stdout != "" {
		fmt.Printf("\nstdout:\n%s\n", result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Printf("\nstderr:\n%s\n", result.Stderr)
	}
	return nil
}

type buttonCounts struct {
	commands int
	toggles  int
	menus    int
}

func countButtons(menu *button.Menu) buttonCounts {
	var c buttonCounts
	for _, b := range menu.Buttons {
		switch btn := b.(type) {
		case *button.Command:
			c.commands++
		case *button.Toggle:
			c.toggles++
		case *button.Menu:
			c.menus++
			sub := countButtons(btn)
			c.commands += sub.commands
			c.toggles += sub.toggles
			c.menus += sub.menus
		}
	}
	return c
}

// findToggle looks up a toggle by display name anywhere in the tree.
func findToggle(menu *button.Menu, name string) *button.Toggle {
	for _, b := range menu.Buttons {
		switch btn := b.(type) {
		case *button.Toggle:
			if btn.Name == name {
				return btn
			}
		case *button.Menu:
			if t := findToggle(btn, name); t != nil {
				return t
			}
		}
	}
	return nil
}
