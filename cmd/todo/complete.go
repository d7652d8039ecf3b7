package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE:  runComplete,
	}
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	if err := openStore().Complete(id); err != nil {
		return fmt.Errorf("error completing task: %w", err)
	}

	fmt.Println("Task completed successfully!")
	return nil
}
