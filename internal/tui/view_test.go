package tui

import (
	"fmt"
	"strings"
	"testing"
)

func TestView_LoadingBeforeSize(t *testing.T) {
	m := NewModel(newTestModel(t).env)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected loading placeholder, got %q", got)
	}
}

func TestView_ListsTasksWithCreatedTime(t *testing.T) {
	m := newTestModel(t)
	m = addTask(t, m, "Write report")
	m = press(t, m, runes("x"))

	v := m.View()
	if !strings.Contains(v, "Write report") {
		t.Fatalf("expected task text in view")
	}
	if !strings.Contains(v, "[x]") {
		t.Fatalf("expected completed checkbox in view")
	}
	created := m.State().Tasks()[0].Created
	if created == "" || !strings.Contains(v, created) {
		t.Fatalf("expected created time %q in view", created)
	}
	if !strings.Contains(v, "0 pending") {
		t.Fatalf("expected pending count in header")
	}
}

func TestView_EmptyHint(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "No tasks. Press 'a' to add one.") {
		t.Fatalf("expected empty hint")
	}
}

func TestView_EditDialog(t *testing.T) {
	m := newTestModel(t)
	m = addTask(t, m, "draft me")
	m = press(t, m, runes("e"))
	v := m.View()
	if !strings.Contains(v, "Edit Task") || !strings.Contains(v, "draft me") {
		t.Fatalf("expected edit dialog pre-filled")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 5); got != "hell…" {
		t.Fatalf("unexpected truncate result %q", got)
	}
	if got := truncate("hi", 5); got != "hi" {
		t.Fatalf("unexpected truncate result %q", got)
	}
	if got := truncate("hi", 0); got != "" {
		t.Fatalf("expected empty for zero width, got %q", got)
	}
}

func TestView_ScrollsToKeepCursorVisible(t *testing.T) {
	m := newTestModel(t)
	for i := 1; i <= 40; i++ {
		m = addTask(t, m, fmt.Sprintf("item %02d", i))
	}

	v := m.View()
	if !strings.Contains(v, "To-Do (40 pending)") {
		t.Fatalf("expected header to stay visible")
	}
	if !strings.Contains(v, "item 40") {
		t.Fatalf("expected cursor row in view")
	}
	if strings.Contains(v, "item 01") {
		t.Fatalf("expected top rows scrolled out")
	}

	m = press(t, m, runes("g"))
	v = m.View()
	if !strings.Contains(v, "item 01") || strings.Contains(v, "item 40") {
		t.Fatalf("expected view scrolled back to the top")
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		cursor, n, size int
		start, end      int
	}{
		{0, 5, 10, 0, 5},
		{0, 40, 10, 0, 10},
		{9, 40, 10, 0, 10},
		{10, 40, 10, 1, 11},
		{39, 40, 10, 30, 40},
		{3, 40, 0, 0, 40},
	}
	for _, c := range cases {
		start, end := window(c.cursor, c.n, c.size)
		if start != c.start || end != c.end {
			t.Fatalf("window(%d, %d, %d) = [%d, %d), want [%d, %d)",
				c.cursor, c.n, c.size, start, end, c.start, c.end)
		}
	}
}
