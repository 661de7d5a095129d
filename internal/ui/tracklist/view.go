package tracklist

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/albums/internal/icons"
	"github.com/llehouerou/albums/internal/playlist"
	"github.com/llehouerou/albums/internal/ui/render"
	"github.com/llehouerou/albums/internal/ui/styles"
)

// View renders the panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	width := m.InnerWidth()
	return render.Panel(m.IsFocused(), width, m.ListHeight(), m.renderHeader(width), m.renderBody(width))
}

func (m Model) renderHeader(width int) string {
	s := styles.T().S()

	name := m.folder
	if name == "" {
		name = "Playlist"
	}
	left := fmt.Sprintf("%s (%d/%d)", render.Sanitize(name), m.current+1, m.Len())

	right := ""
	if m.loading {
		right = m.spinner
	}
	return s.Title.Render(render.Row(left, right, width))
}

func (m Model) renderBody(width int) []string {
	s := styles.T().S()

	var status string
	switch {
	case m.err != "":
		status = s.Error.Render(render.TruncateAndPad(icons.Error()+m.err, width))
	case m.loading && m.Len() == 0:
		status = s.Muted.Render(render.TruncateAndPad("Loading…", width))
	case m.Len() == 0:
		status = s.Subtle.Render(render.TruncateAndPad("No tracks", width))
	}
	if status != "" {
		return []string{status}
	}

	tracks := m.Items()
	start, end := m.VisibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderTrackLine(tracks[i], i, width))
	}
	return lines
}

// renderTrackLine renders the name on the left and the play/pause label on
// the right. Only the active row shows Pause while playing.
func (m Model) renderTrackLine(track playlist.Track, idx, width int) string {
	label := "Play " + icons.Play()
	if idx == m.current && m.playing {
		label = "Pause " + icons.Pause()
	}
	line := " " + render.Row(icons.FormatTrack(render.Sanitize(track.Name)), label+" ", width-1)
	return m.trackStyle(idx).Render(line)
}

func (m Model) trackStyle(idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := m.IsFocused() && idx == m.SelectedIndex()

	switch {
	case isCursor && idx == m.current:
		return s.Cursor.Foreground(styles.T().Accent).Bold(true)
	case isCursor:
		return s.Cursor
	case idx == m.current:
		return s.Playing
	default:
		return s.Base
	}
}
