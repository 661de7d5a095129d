package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/albums/internal/icons"
	"github.com/llehouerou/albums/internal/ui/render"
	"github.com/llehouerou/albums/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
)

// line renders the content row: ⏮ ▶ ⏭  Title  ━━━───  1:23 / 3:58  🔊 80%
func (c composed) line(s State) string {
	st := styles.T().S()

	if !s.HasTrack {
		return render.Row(st.Muted.Render("No track selected"), st.Muted.Render(c.volume), c.inner)
	}

	var b strings.Builder
	b.WriteString(st.Muted.Render(c.prev))
	b.WriteString(" ")
	b.WriteString(c.toggleStyle(s).Render(c.toggle))
	b.WriteString(" ")
	b.WriteString(st.Muted.Render(c.next))
	b.WriteString(gap)
	b.WriteString(st.Title.Render(c.title))
	b.WriteString(gap)

	if s.Err != "" {
		rest := c.barWidth + len(gap) + lipgloss.Width(c.time)
		b.WriteString(st.Error.Render(render.TruncateAndPad(s.Err, rest)))
	} else {
		b.WriteString(progressBar(s, c.barWidth))
		b.WriteString(gap)
		b.WriteString(st.Muted.Render(c.time))
	}
	b.WriteString(gap)
	b.WriteString(st.Muted.Render(c.volume))

	return ansi.Truncate(b.String(), c.inner, "")
}

func (c composed) toggleStyle(s State) lipgloss.Style {
	st := styles.T().S()
	switch {
	case s.Err != "":
		return st.Error
	case s.Seeking:
		return st.Seeking
	case s.Playing:
		return st.Playing
	default:
		return st.Base
	}
}

// progressBar renders the bar at s.Fraction. While seeking the filled part
// shows the preview in the seeking color.
func progressBar(s State, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	filled := min(int(float64(width)*s.Fraction), width)

	var fill string
	if s.Seeking {
		fill = t.S().Seeking.Render(strings.Repeat(filledCell, filled))
	} else {
		fill = styles.GradientFill(filledCell, filled, t.Accent, t.AccentEnd)
	}
	return fill + t.S().Empty.Render(strings.Repeat(emptyCell, width-filled))
}

func volumeText(level float64) string {
	return fmt.Sprintf("%s %3d%%", icons.Volume(level), int(level*100+0.5))
}

// renderDetails renders the second row of the expanded bar: artist and
// album on the left, format and download size on the right.
func renderDetails(s State, width int) string {
	st := styles.T().S()

	var info []string
	if s.Artist != "" {
		info = append(info, s.Artist)
	}
	if s.Album != "" {
		info = append(info, s.Album)
	}

	var format []string
	if s.Format != "" {
		format = append(format, s.Format)
	}
	if s.Size > 0 {
		format = append(format, humanize.Bytes(uint64(s.Size)))
	}

	left := render.Sanitize(strings.Join(info, " · "))
	right := strings.Join(format, " · ")
	return st.Subtle.Render(render.Row(left, right, width))
}

func barStyle(width int, lines ...string) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Faint).
		Padding(0, padding).
		Width(max(width-2, 0)).
		Render(strings.Join(lines, "\n"))
}
