package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/restoran/internal/config"
	"github.com/faizmokh/restoran/internal/ui"
)

// NewRootCommand creates the top-level Cobra command that launches the editor TUI.
func NewRootCommand(ctx context.Context, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restoran",
		Short: "Browse and add restaurants from your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Run the TUI in the alternate screen buffer (env "+config.EnvAltScreen+")")
	cmd.Flags().StringVar(&cfg.DebugLogPath, "debug-log", cfg.DebugLogPath, "Write debug logs to this file (env "+config.EnvDebugLog+")")

	cmd.AddCommand(
		newListCommand(),
		newShowCommand(),
		newVersionCommand(),
	)

	return cmd
}

func runTUI(ctx context.Context, cfg config.Config) error {
	closeLog, err := setupLogging(cfg.DebugLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Printf("starting editor (alt-screen=%t)", cfg.AltScreen)
	if _, err := tea.NewProgram(ui.NewModel(), opts...).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// setupLogging routes the standard logger to path, or discards it so log
// output cannot corrupt the TUI frame.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve debug log: %w", err)
	}
	f, err := tea.LogToFile(path, "restoran")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// ExecuteCommand loads configuration and executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return NewRootCommand(ctx, cfg).Execute()
}

// Main is a helper used by cmd/restoran/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
