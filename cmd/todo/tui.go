package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alimert/todo/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse tasks interactively",
		Long:  `Open an interactive browser to navigate, complete, and remove tasks.`,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.New(openStore()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
