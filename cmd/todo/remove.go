package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a task",
		Long:  `Remove a task permanently. Remaining tasks keep their ids.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	if err := openStore().Remove(id); err != nil {
		return fmt.Errorf("error removing task: %w", err)
	}

	fmt.Println("Task removed successfully!")
	return nil
}
