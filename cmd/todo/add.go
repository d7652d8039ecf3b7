package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alimert/todo/internal/config"
	"github.com/alimert/todo/internal/logging"
	"github.com/alimert/todo/internal/task"
)

var (
	addDescription string
	addDue         string
	addPriority    string
	addCategory    string
	addTags        string
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long:  `Add a new task with an optional description, due date, priority, category, and tags.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}

	cmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&addDue, "due", "D", "", "Due date (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high, critical)")
	cmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (personal, work, shopping, health, or a custom label)")
	cmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma-separated tags")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg := config.MustGet()
	if addPriority == "" {
		addPriority = cfg.DefaultPriority
	}
	if addCategory == "" {
		addCategory = cfg.DefaultCategory
	}

	s := openStore()

	t, err := task.New(s.NextID(), args[0], optional(addDescription), optional(addDue), addPriority, addCategory, optional(addTags))
	if err != nil {
		return fmt.Errorf("error creating task: %w", err)
	}

	if err := s.Add(t); err != nil {
		return fmt.Errorf("error adding task: %w", err)
	}

	logging.WithCommand("add").WithField("id", t.ID).Debug("task added")
	fmt.Println("Task added successfully!")
	return nil
}
