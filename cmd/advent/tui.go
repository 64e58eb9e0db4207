package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fentz26/advent/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse days and runs interactively",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Log lines would corrupt the alternate screen.
	a, err := newApp(cfg, zap.NewNop())
	if err != nil {
		return err
	}
	defer a.Close()

	backend := tui.NewLocalBackend(a.registry, a.runner, a.store)
	if err := tui.Run(cmd.Context(), backend); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
