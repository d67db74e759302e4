package tui

import "github.com/charmbracelet/x/ansi"

// truncate shortens a string to max cells with an ellipsis
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return ansi.Truncate(s, max, "…")
}

// clamp keeps i within [0, n)
func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// window returns the [start, end) slice of n rows that fits in size rows and
// keeps cursor visible
func window(cursor, n, size int) (int, int) {
	if size <= 0 || n <= size {
		return 0, n
	}
	start := 0
	if cursor >= size {
		start = cursor - size + 1
	}
	if start > n-size {
		start = n - size
	}
	return start, start + size
}
