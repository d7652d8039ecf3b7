// Package tui implements the interactive task browser using Bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alimert/todo/internal/render"
	"github.com/alimert/todo/internal/store"
	"github.com/alimert/todo/internal/task"
)

// keyMap defines the browser key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "complete"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the Bubbletea model for the task browser.
type Model struct {
	store  *store.Store
	tasks  []*task.Task
	cursor int
	status string
	keys   keyMap
}

// New creates a browser model over the given store.
func New(s *store.Store) Model {
	return Model{
		store: s,
		tasks: s.List(store.Filters{}),
		keys:  keys,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if t := m.selected(); t != nil && !t.Completed {
			if err := m.store.Complete(t.ID); err != nil {
				m.status = fmt.Sprintf("Complete failed: %v", err)
			} else {
				m.status = fmt.Sprintf("Completed task %d", t.ID)
			}
			m.refresh()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if t := m.selected(); t != nil {
			if err := m.store.Remove(t.ID); err != nil {
				m.status = fmt.Sprintf("Remove failed: %v", err)
			} else {
				m.status = fmt.Sprintf("Removed task %d", t.ID)
			}
			m.refresh()
		}
	}

	return m, nil
}

// View renders the task list with the cursor row highlighted.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(render.TitleStyle.Render("Tasks"))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(render.DimStyle.Render("No tasks found."))
		b.WriteString("\n")
	}

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = render.TitleStyle.Render("❯ ")
		}

		status := render.StatusPending.Render(render.IndicatorPending)
		if t.Completed {
			status = render.StatusDone.Render(render.IndicatorDone)
		}

		line := fmt.Sprintf("%s%s %-3d %s", cursor, status, t.ID, t.Title)
		if i == m.cursor {
			line += "  " + render.DimStyle.Render(string(t.Priority)+" · "+t.Category.Label())
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(render.DimStyle.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(helpLine(m.keys))

	return b.String()
}

// selected returns the task under the cursor, or nil.
func (m Model) selected() *task.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// refresh re-reads the task list and clamps the cursor.
func (m *Model) refresh() {
	m.tasks = m.store.List(store.Filters{})
	if m.cursor >= len(m.tasks) && len(m.tasks) > 0 {
		m.cursor = len(m.tasks) - 1
	}
	if len(m.tasks) == 0 {
		m.cursor = 0
	}
}

func helpLine(k keyMap) string {
	parts := []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Quit}
	var out []string
	for _, b := range parts {
		h := b.Help()
		out = append(out, render.TitleStyle.Render(h.Key)+" "+render.DimStyle.Render(h.Desc))
	}
	return strings.Join(out, "  ")
}
