package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alimert/todo/internal/render"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task in detail",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	t, err := openStore().Show(id)
	if err != nil {
		return fmt.Errorf("error showing task: %w", err)
	}

	fmt.Print(render.Detail(t))
	return nil
}
