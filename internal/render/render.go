// Package render formats tasks for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alimert/todo/internal/task"
)

// displayTimeLayout is how timestamps appear on screen.
const displayTimeLayout = "2006-01-02 15:04"

// Table renders tasks as a fixed-width table, one row per task.
// An empty list renders as "No tasks found.".
func Table(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}

	var b strings.Builder

	header := fmt.Sprintf("%-4s %-7s %-28s %-17s %-9s %-10s %s",
		"ID", "STATUS", "TITLE", "DUE DATE", "PRIORITY", "CATEGORY", "TAGS")
	b.WriteString(HeaderStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", 84))
	b.WriteByte('\n')

	for _, t := range tasks {
		status := StatusPending.Render(IndicatorPending)
		if t.Completed {
			status = StatusDone.Render(IndicatorDone)
		}

		title := t.Title
		if runes := []rune(title); len(runes) > 26 {
			title = string(runes[:23]) + "..."
		}

		// The status indicator is styled, so it pads to the column
		// width by hand rather than through the format verb.
		b.WriteString(fmt.Sprintf("%-4d %s       %-28s %-17s %s %-10s %s\n",
			t.ID,
			status,
			title,
			dueDateText(t),
			PriorityStyle(t.Priority).Render(fmt.Sprintf("%-9s", string(t.Priority))),
			t.Category.Label(),
			strings.Join(t.Tags, ", "),
		))
	}

	return b.String()
}

// Detail renders the full field/value view for one task.
func Detail(t *task.Task) string {
	status := StatusPending.Render("Pending")
	if t.Completed {
		status = StatusDone.Render("Completed")
	}

	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", t.ID)},
		{"Title", t.Title},
		{"Description", stringOrDash(t.Description)},
		{"Status", status},
		{"Created", t.CreatedAt.Format(displayTimeLayout)},
		{"Due Date", dueDateText(t)},
		{"Priority", PriorityStyle(t.Priority).Render(string(t.Priority))},
		{"Category", t.Category.Label()},
		{"Tags", strings.Join(t.Tags, ", ")},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", DimStyle.Render(fmt.Sprintf("%-12s", row[0])), row[1]))
	}
	return b.String()
}

// PriorityStyle returns the style for a priority level.
func PriorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityMedium:
		return PriorityMediumStyle
	case task.PriorityHigh:
		return PriorityHighStyle
	case task.PriorityCritical:
		return PriorityCriticalStyle
	default:
		return lipgloss.NewStyle()
	}
}

func dueDateText(t *task.Task) string {
	if t.DueDate == nil {
		return "-"
	}
	return t.DueDate.Format(displayTimeLayout)
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
