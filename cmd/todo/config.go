package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alimert/todo/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage todo configuration files.`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the current configuration values from all sources.`,
		RunE:  runConfigShow,
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create example configuration file",
		Long: `Create an example configuration file at ~/.config/todo/config.yaml.

The generated file contains all available options with their default values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		Long:  `Display the paths where configuration files are searched.`,
		RunE:  runConfigPath,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Current configuration:")
	fmt.Println()
	fmt.Printf("  store_path:       %s\n", cfg.StorePath)
	fmt.Printf("  default_priority: %s\n", cfg.DefaultPriority)
	fmt.Printf("  default_category: %s\n", cfg.DefaultCategory)
	fmt.Println()
	fmt.Println("  Logging:")
	fmt.Printf("    level:     %s\n", cfg.Logging.Level)
	fmt.Printf("    file_path: %s\n", valueOrDefault(cfg.Logging.FilePath, "(not set)"))
	fmt.Printf("    json:      %t\n", cfg.Logging.JSON)
	fmt.Printf("    console:   %t\n", cfg.Logging.Console)

	return nil
}

func runConfigInit(force bool) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "todo", "config.yaml")

	// Check if file exists
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	if err := config.WriteExample(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at: %s\n", configPath)
	fmt.Println()
	fmt.Println("Edit this file to customize your settings.")
	fmt.Println("Run 'todo config show' to see current values.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration file search paths (in priority order):")
	fmt.Println()

	paths := config.ConfigPaths()
	for i, p := range paths {
		exists := "not found"
		if _, err := os.Stat(p); err == nil {
			exists = "found"
		}
		fmt.Printf("  %d. %s (%s)\n", i+1, p, exists)
	}

	fmt.Println()
	fmt.Println("Environment variables can override file settings.")
	fmt.Println("Supported env vars:")
	fmt.Println("  TODO_STORE_PATH")
	fmt.Println("  TODO_DEFAULT_PRIORITY")
	fmt.Println("  TODO_DEFAULT_CATEGORY")
	fmt.Println("  TODO_LOG_LEVEL")
	fmt.Println("  TODO_LOG_FILE")
	fmt.Println("  TODO_LOG_JSON")
	fmt.Println("  TODO_LOG_MAX_SIZE")

	return nil
}

func valueOrDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
