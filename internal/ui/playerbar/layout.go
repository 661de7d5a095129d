package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/albums/internal/icons"
	"github.com/llehouerou/albums/internal/playback"
	"github.com/llehouerou/albums/internal/ui"
	"github.com/llehouerou/albums/internal/ui/render"
)

const (
	gap     = "  "
	padding = 1
	// contentRow is the row of the controls and progress bar, counted from
	// the top border of the bar.
	contentRow = 1
)

// Span is a horizontal range of columns, [Start, Start+Width).
type Span struct {
	Start int
	Width int
}

// Contains reports whether column x is inside the span.
func (s Span) Contains(x int) bool {
	return s.Width > 0 && x >= s.Start && x < s.Start+s.Width
}

// Target is a clickable element of the bar.
type Target int

const (
	TargetNone Target = iota
	TargetPrevious
	TargetToggle
	TargetNext
	TargetProgress
)

// Layout gives the columns of the clickable elements, counted from the left
// edge of the bar.
type Layout struct {
	Previous Span
	Toggle   Span
	Next     Span
	Progress Span
}

// LayoutOf returns where Render places the controls for s at width.
func LayoutOf(s State, width int) Layout {
	return compose(s, width).layout
}

// HitTest returns the element at column x of row y, both relative to the
// top-left corner of the bar.
func (l Layout) HitTest(x, y int) Target {
	if y != contentRow {
		return TargetNone
	}
	switch {
	case l.Previous.Contains(x):
		return TargetPrevious
	case l.Toggle.Contains(x):
		return TargetToggle
	case l.Next.Contains(x):
		return TargetNext
	case l.Progress.Contains(x):
		return TargetProgress
	}
	return TargetNone
}

// FractionAt maps column x to a position on the progress bar. Columns left
// or right of the bar clamp to its ends, so a drag may leave the bar.
func (l Layout) FractionAt(x int) float64 {
	if l.Progress.Width <= 1 {
		return 0
	}
	f := float64(x-l.Progress.Start) / float64(l.Progress.Width-1)
	return playback.ClampFraction(f)
}

// composed is the compact line split into its pieces, with the layout
// derived from their widths.
type composed struct {
	inner    int
	prev     string
	toggle   string
	next     string
	title    string
	time     string
	volume   string
	barWidth int
	layout   Layout
}

func compose(s State, width int) composed {
	c := composed{
		inner:  max(width-ui.BorderWidth-2*padding, 0),
		prev:   icons.Previous(),
		toggle: statusIcon(s),
		next:   icons.Next(),
		volume: volumeText(s.Volume),
	}
	if !s.HasTrack {
		return c
	}
	c.time = render.Duration(s.Position) + " / " + render.Duration(s.Duration)

	offset := ui.BorderWidth/2 + padding
	x := 0
	c.layout.Previous = Span{Start: offset + x, Width: lipgloss.Width(c.prev)}
	x += c.layout.Previous.Width + 1
	c.layout.Toggle = Span{Start: offset + x, Width: lipgloss.Width(c.toggle)}
	x += c.layout.Toggle.Width + 1
	c.layout.Next = Span{Start: offset + x, Width: lipgloss.Width(c.next)}
	x += c.layout.Next.Width + len(gap)

	suffix := len(gap) + lipgloss.Width(c.time) + len(gap) + lipgloss.Width(c.volume)
	room := c.inner - x - len(gap) - suffix - ui.MinProgressBarWidth
	c.title = render.TruncateEllipsis(render.Sanitize(s.Title), max(min(room, c.inner*2/5), 0))
	x += lipgloss.Width(c.title) + len(gap)

	c.barWidth = max(c.inner-x-suffix, 0)
	if s.Err == "" {
		c.layout.Progress = Span{Start: offset + x, Width: c.barWidth}
	}
	return c
}

func statusIcon(s State) string {
	switch {
	case s.Err != "":
		return icons.Error()
	case s.Loading && s.Spinner != "":
		return s.Spinner
	case s.Playing:
		return icons.Play()
	default:
		return icons.Pause()
	}
}
