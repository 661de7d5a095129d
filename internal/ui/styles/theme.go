package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the albums palette: one accent pair and a grayscale ramp.
type Theme struct {
	Accent    lipgloss.Color // playing track, focused panel, progress start
	AccentEnd lipgloss.Color // progress end, seek preview

	Text   lipgloss.Color
	Dim    lipgloss.Color // help bar, spinner
	Faint  lipgloss.Color // details row, empty lists, borders
	Cursor lipgloss.Color // cursor row background

	Error   lipgloss.Color // listing and load failures
	Warning lipgloss.Color // status line

	styles *Styles
}

// Styles are the lipgloss styles built from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style // current track row
	Cursor  lipgloss.Style
	Seeking lipgloss.Style // filled progress while previewing a seek
	Empty   lipgloss.Style // unfilled progress
	Error   lipgloss.Style
	Warning lipgloss.Style

	panel        lipgloss.Style
	panelFocused lipgloss.Style
}

// Panel returns the rounded border style of a list panel.
func (s *Styles) Panel(focused bool) lipgloss.Style {
	if focused {
		return s.panelFocused
	}
	return s.panel
}

var defaultTheme = Theme{
	Accent:    lipgloss.Color("#a78bfa"),
	AccentEnd: lipgloss.Color("#f1a208"),

	Text:   lipgloss.Color("#c0c0c0"),
	Dim:    lipgloss.Color("#808080"),
	Faint:  lipgloss.Color("#585858"),
	Cursor: lipgloss.Color("#303030"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles of the theme, built on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.Text)
	faint := lipgloss.NewStyle().Foreground(t.Faint)
	panel := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.Dim),
		Subtle:  faint,
		Title:   base.Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Cursor:  lipgloss.NewStyle().Background(t.Cursor).Foreground(t.Text),
		Seeking: lipgloss.NewStyle().Foreground(t.AccentEnd),
		Empty:   faint,
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		panel:        panel.BorderForeground(t.Faint),
		panelFocused: panel.BorderForeground(t.Accent),
	}
}
