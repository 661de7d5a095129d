package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii", "01 Intro", "01 Intro"},
		{"clean unicode", "Café – Ünïcode", "Café – Ünïcode"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline removed", "line\nbreak", "linebreak"},
		{"escape removed", "bad\x1b[31mred", "bad[31mred"},
		{"delete removed", "a\x7fb", "ab"},
		{"invalid utf8 dropped", "ok\xffok", "okok"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"c1 control removed", "a\u0085b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"truncation with single ellipsis", "hello world", 8, "hello w…"},
		{"multibyte not split", "ééééé", 3, "éé…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateEllipsis(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis_Styled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")

	got := TruncateEllipsis(styled, 6)
	if w := lipgloss.Width(got); w != 6 {
		t.Errorf("width = %d, want 6 (got %q)", w, got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padding needed", "hello", 10, "hello     "},
		{"exact width", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.input, tt.width); got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, width := range []int{1, 5, 8, 20} {
		got := TruncateAndPad("hello world", width)
		if w := lipgloss.Width(got); w != width {
			t.Errorf("TruncateAndPad(width=%d) has width %d: %q", width, w, got)
		}
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"fits", "Intro", "Play", 12, "Intro   Play"},
		{"left truncated", "A very long name", "Play", 10, "A ve… Play"},
		{"minimum gap", "ab", "cd", 3, "ab cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Row(tt.left, tt.right, tt.width); got != tt.want {
				t.Errorf("Row(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.want)
			}
		})
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(2); got != "  " {
		t.Errorf("EmptyLine(2) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{59*time.Second + 999*time.Millisecond, "0:59"},
		{60 * time.Second, "1:00"},
		{200 * time.Second, "3:20"},
		{75 * time.Minute, "75:00"},
		{-3 * time.Second, "0:00"},
	}

	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPanel(t *testing.T) {
	out := Panel(false, 10, 3, "Head", []string{"one", "two", "three", "four"})
	lines := strings.Split(ansi.Strip(out), "\n")

	if len(lines) != 2+2+3 {
		t.Fatalf("got %d lines, want border, header, separator and 3 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Head") {
		t.Errorf("header line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "──────────") {
		t.Errorf("separator line = %q", lines[2])
	}
	if strings.Contains(out, "four") {
		t.Error("lines past height should be dropped")
	}
	if got := ansi.StringWidth(lines[5]); got != 12 {
		t.Errorf("padded row width = %d, want 12", got)
	}
}
