// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alimert/todo/internal/config"
	"github.com/alimert/todo/internal/logging"
	"github.com/alimert/todo/internal/store"
)

// Version is set at build time.
var Version = "dev"

func main() {
	// Initialize logging from config
	initLogging()

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A feature-rich CLI todo manager",
		Long: `Todo is a CLI for tracking personal tasks.

Tasks live in a single JSON file in your home directory and can be
added, listed, shown, completed, edited, and removed. Run 'todo tui'
for an interactive browser.`,
	}

	// Add subcommands
	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newShowCmd(),
		newCompleteCmd(),
		newRemoveCmd(),
		newEditCmd(),
		newTUICmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging initializes the logger from config.
func initLogging() {
	cfg, err := config.Get()
	if err != nil {
		// If config fails, use defaults (console output)
		_ = logging.Init(nil)
		return
	}

	lc := logging.LoggingConfig{
		Level:      cfg.Logging.Level,
		FilePath:   cfg.Logging.FilePath,
		JSON:       cfg.Logging.JSON,
		Console:    cfg.Logging.Console,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	}

	if err := logging.InitFromLogConfig(lc); err != nil {
		// Fall back to defaults on error
		_ = logging.Init(nil)
	}
}

// openStore opens the task store at the configured path.
func openStore() *store.Store {
	return store.Open(config.MustGet().StorePath)
}

// optional turns a flag value into a pointer, treating the empty
// string as "not supplied".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
