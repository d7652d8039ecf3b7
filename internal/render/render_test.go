package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alimert/todo/internal/task"
)

func strptr(s string) *string {
	return &s
}

func TestTable(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		if got := Table(nil); got != "No tasks found." {
			t.Errorf("Table(nil) = %q, want %q", got, "No tasks found.")
		}
	})

	t.Run("renders one row per task", func(t *testing.T) {
		milk, err := task.New(1, "Buy milk", nil, strptr("2024-06-01 09:30"), "high", "shopping", strptr("errands"))
		if err != nil {
			t.Fatal(err)
		}
		mom, err := task.New(2, "Call mom", nil, nil, "low", "personal", nil)
		if err != nil {
			t.Fatal(err)
		}
		mom.Completed = true

		got := Table([]*task.Task{milk, mom})

		for _, want := range []string{"Buy milk", "Call mom", "2024-06-01 09:30", "Shopping", "Personal", "errands", "ID", "STATUS"} {
			if !strings.Contains(got, want) {
				t.Errorf("table output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("truncates long titles", func(t *testing.T) {
		long, err := task.New(1, strings.Repeat("x", 60), nil, nil, "low", "personal", nil)
		if err != nil {
			t.Fatal(err)
		}

		got := Table([]*task.Task{long})
		if !strings.Contains(got, "...") {
			t.Error("expected a truncated title")
		}
		if strings.Contains(got, strings.Repeat("x", 60)) {
			t.Error("full title should not appear")
		}
	})

	t.Run("truncates multi-byte titles on rune boundaries", func(t *testing.T) {
		wide, err := task.New(1, strings.Repeat("図", 30), nil, nil, "low", "personal", nil)
		if err != nil {
			t.Fatal(err)
		}

		got := Table([]*task.Task{wide})
		if !utf8.ValidString(got) {
			t.Error("table output contains invalid UTF-8")
		}
		if !strings.Contains(got, strings.Repeat("図", 23)+"...") {
			t.Errorf("expected the title cut after 23 runes:\n%s", got)
		}
	})
}

func TestDetail(t *testing.T) {
	tk, err := task.New(7, "Dentist", strptr("annual checkup"), strptr("2024-06-01 09:30"), "critical", "health", strptr("teeth, yearly"))
	if err != nil {
		t.Fatal(err)
	}

	got := Detail(tk)

	for _, want := range []string{"7", "Dentist", "annual checkup", "Pending", "2024-06-01 09:30", "Critical", "Health", "teeth, yearly"} {
		if !strings.Contains(got, want) {
			t.Errorf("detail output missing %q:\n%s", want, got)
		}
	}

	t.Run("absent fields render as dashes", func(t *testing.T) {
		bare, err := task.New(1, "bare", nil, nil, "low", "personal", nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := Detail(bare); !strings.Contains(got, "-") {
			t.Errorf("expected dashes for absent fields:\n%s", got)
		}
	})
}
