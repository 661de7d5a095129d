package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLineAndIndex(t *testing.T) {
	view := "header\n\x1b[1mtrack one\x1b[0m\ntrack two"

	if got := FindLine(view, "two"); got != "track two" {
		t.Errorf("FindLine() = %q", got)
	}
	if got := FindLine(view, "three"); got != "" {
		t.Errorf("FindLine() missing = %q", got)
	}
	if got := LineIndex(view, "one"); got != 1 {
		t.Errorf("LineIndex() = %d, want 1", got)
	}
	if got := LineIndex(view, "three"); got != -1 {
		t.Errorf("LineIndex() missing = %d, want -1", got)
	}
}

func TestKey(t *testing.T) {
	tests := []string{"enter", "esc", "tab", "up", "left", "shift+right", "ctrl+c", "j", "G", "+"}
	for _, s := range tests {
		if got := Key(s).String(); got != s {
			t.Errorf("Key(%q).String() = %q", s, got)
		}
	}
}

func TestMouseHelpers(t *testing.T) {
	if m := Press(3, 4); m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft || m.X != 3 || m.Y != 4 {
		t.Errorf("Press() = %+v", m)
	}
	if m := Drag(1, 2); m.Action != tea.MouseActionMotion {
		t.Errorf("Drag() = %+v", m)
	}
	if m := Release(1, 2); m.Action != tea.MouseActionRelease {
		t.Errorf("Release() = %+v", m)
	}
}
