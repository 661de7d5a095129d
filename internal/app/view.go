package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/albums/internal/ui/playerbar"
	"github.com/llehouerou/albums/internal/ui/render"
	"github.com/llehouerou/albums/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.folders.View(), m.tracks.View())
	bar := playerbar.Render(m.barState(l.barMode), m.width)

	return lipgloss.JoinVertical(lipgloss.Left, panels, bar, m.footerView())
}

func (m Model) barState(mode playerbar.DisplayMode) playerbar.State {
	return playerbar.NewState(m.ctrl.State(), mode, m.spinner.View())
}

// footerView shows the help, or the last warning above the short help.
func (m Model) footerView() string {
	helpView := m.help.View(m.helpKeys())
	if m.status == "" {
		return helpView
	}
	status := styles.T().S().Warning.Render(render.TruncateEllipsis(render.Sanitize(m.status), m.width))
	return lipgloss.JoinVertical(lipgloss.Left, status, helpView)
}
