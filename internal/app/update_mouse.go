package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/albums/internal/ui/playerbar"
)

// handleMouse routes mouse events. A press on the progress bar begins a
// seek, motion moves the preview and the release commits it, wherever the
// pointer is by then.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.layout()
	bar := playerbar.LayoutOf(m.barState(l.barMode), m.width)

	if m.dragging {
		switch msg.Action { //nolint:exhaustive // press is ignored while dragging
		case tea.MouseActionMotion:
			m.ctrl.UpdateSeekPreview(bar.FractionAt(msg.X))
		case tea.MouseActionRelease:
			m.dragging = false
			m.ctrl.CommitSeek(bar.FractionAt(msg.X))
		}
		return m, nil
	}

	switch {
	case msg.Y < l.panelHeight:
		return m.handlePanelMouse(msg, l)
	case msg.Y < l.barTop+playerbar.Height(l.barMode):
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handleBarPress(bar, msg.X, msg.Y-l.barTop)
	}
	return m, nil
}

func (m Model) handlePanelMouse(msg tea.MouseMsg, l screenLayout) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.X < l.folderWidth {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.setFocus(FocusFolders)
		}
		m.folders, cmd = m.folders.HandleMouse(msg)
		return m, cmd
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.setFocus(FocusTracks)
	}
	msg.X -= l.folderWidth
	m.tracks, cmd = m.tracks.HandleMouse(msg)
	return m, cmd
}

func (m *Model) handleBarPress(bar playerbar.Layout, x, y int) {
	switch bar.HitTest(x, y) {
	case playerbar.TargetPrevious:
		m.ctrl.Previous()
	case playerbar.TargetToggle:
		m.ctrl.TogglePlayPause()
	case playerbar.TargetNext:
		m.ctrl.Next()
	case playerbar.TargetProgress:
		m.ctrl.BeginSeek()
		if m.ctrl.State().IsSeeking {
			m.dragging = true
			m.ctrl.UpdateSeekPreview(bar.FractionAt(x))
		}
	case playerbar.TargetNone:
	}
}
