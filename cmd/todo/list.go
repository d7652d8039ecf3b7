package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alimert/todo/internal/render"
	"github.com/alimert/todo/internal/store"
)

var (
	listCategory  string
	listPriority  string
	listCompleted bool
	listPending   bool
	listJSON      bool
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  `List tasks, optionally filtered by category, priority, or completion state.`,
		RunE:  runList,
	}

	cmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority")
	cmd.Flags().BoolVar(&listCompleted, "completed", false, "Only completed tasks")
	cmd.Flags().BoolVar(&listPending, "pending", false, "Only pending tasks")
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	s := openStore()

	tasks := s.List(store.Filters{
		Category:  listCategory,
		Priority:  listPriority,
		Completed: listCompleted,
		Pending:   listPending,
	})

	if listJSON {
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(render.Table(tasks))
	return nil
}
