package ui

import "testing"

func TestTruncateRunesHelper(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "apple", 10, "apple"},
		{"exact", "apple", 5, "apple"},
		{"truncated", "strawberry", 6, "straw…"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
		{"zero width", "apple", 0, ""},
		{"suffix only", "apple", 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateRunesHelper(tt.input, tt.maxWidth, "…"); got != tt.want {
				t.Errorf("truncateRunesHelper(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight = %q", got)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		total, active, height int
		start, end            int
	}{
		{5, 2, 0, 0, 5},
		{5, 2, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
		{20, -1, 5, 0, 5},
	}
	for _, tt := range tests {
		start, end := window(tt.total, tt.active, tt.height)
		if start != tt.start || end != tt.end {
			t.Errorf("window(%d, %d, %d) = %d,%d, want %d,%d",
				tt.total, tt.active, tt.height, start, end, tt.start, tt.end)
		}
	}
}
