package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alimert/todo/internal/store"
	"github.com/alimert/todo/internal/task"
)

func testModel(t *testing.T, titles ...string) Model {
	t.Helper()
	s := store.Open(filepath.Join(t.TempDir(), "tasks.json"))
	for _, title := range titles {
		tk, err := task.New(s.NextID(), title, nil, nil, "medium", "personal", nil)
		if err != nil {
			t.Fatalf("task.New(%q) failed: %v", title, err)
		}
		if err := s.Add(tk); err != nil {
			t.Fatalf("Add(%q) failed: %v", title, err)
		}
	}
	return New(s)
}

func keyPress(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNavigation(t *testing.T) {
	m := testModel(t, "first", "second", "third")

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}

	m = keyPress(m, "down")
	m = keyPress(m, "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d after two downs, want 2", m.cursor)
	}

	// Cursor clamps at the last row
	m = keyPress(m, "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}

	m = keyPress(m, "up")
	if m.cursor != 1 {
		t.Errorf("cursor = %d after up, want 1", m.cursor)
	}
}

func TestToggleCompletes(t *testing.T) {
	m := testModel(t, "first")

	m = keyPress(m, "space")

	got, err := m.store.Show(1)
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if !got.Completed {
		t.Error("space should complete the selected task")
	}
}

func TestDeleteRemoves(t *testing.T) {
	m := testModel(t, "first", "second")

	m = keyPress(m, "down")
	m = keyPress(m, "x")

	if len(m.tasks) != 1 {
		t.Fatalf("got %d tasks after delete, want 1", len(m.tasks))
	}
	if m.tasks[0].Title != "first" {
		t.Errorf("remaining task = %q, want %q", m.tasks[0].Title, "first")
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped after delete)", m.cursor)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t, "first")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %v", msg)
	}
}

func TestView(t *testing.T) {
	m := testModel(t, "first", "second")

	view := m.View()
	for _, want := range []string{"Tasks", "first", "second"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	empty := testModel(t)
	if !strings.Contains(empty.View(), "No tasks found.") {
		t.Error("empty view should say no tasks were found")
	}
}
