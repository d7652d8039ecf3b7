package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alimert/todo/internal/task"
)

var (
	editTitle       string
	editDescription string
	editDue         string
	editPriority    string
	editCategory    string
	editTags        string
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long:  `Edit a task field by field. Only the flags you pass are changed.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}

	cmd.Flags().StringVarP(&editTitle, "title", "T", "", "New title")
	cmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&editDue, "due", "D", "", "New due date (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (low, medium, high, critical)")
	cmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&editTags, "tags", "t", "", "New comma-separated tags")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	// A flag counts as supplied only when passed on the command line,
	// so an explicit empty value still overwrites the field.
	var u task.Updates
	flags := cmd.Flags()
	if flags.Changed("title") {
		u.Title = &editTitle
	}
	if flags.Changed("description") {
		u.Description = &editDescription
	}
	if flags.Changed("due") {
		u.Due = &editDue
	}
	if flags.Changed("priority") {
		u.Priority = &editPriority
	}
	if flags.Changed("category") {
		u.Category = &editCategory
	}
	if flags.Changed("tags") {
		u.Tags = &editTags
	}

	if err := openStore().Edit(id, u); err != nil {
		return fmt.Errorf("error editing task: %w", err)
	}

	fmt.Println("Task updated successfully!")
	return nil
}
