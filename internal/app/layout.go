package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/albums/internal/keymap"
	"github.com/llehouerou/albums/internal/ui"
	"github.com/llehouerou/albums/internal/ui/playerbar"
)

// expandedMinHeight is the terminal height from which the player bar shows
// its detail row.
const expandedMinHeight = 24

// screenLayout is where each part of the screen goes, top to bottom:
// panels side by side, player bar, footer.
type screenLayout struct {
	folderWidth int
	trackWidth  int
	panelHeight int
	barTop      int
	barMode     playerbar.DisplayMode
}

func (m Model) layout() screenLayout {
	l := screenLayout{barMode: playerbar.ModeCompact}
	if m.height >= expandedMinHeight {
		l.barMode = playerbar.ModeExpanded
	}

	l.folderWidth = max(m.width/ui.FolderPanelDivisor, ui.MinFolderPanelWidth)
	l.folderWidth = min(l.folderWidth, m.width/2)
	l.trackWidth = max(m.width-l.folderWidth, 0)

	footer := lipgloss.Height(m.footerView())
	l.panelHeight = max(m.height-playerbar.Height(l.barMode)-footer, ui.PanelOverhead)
	l.barTop = l.panelHeight
	return l
}

// resize propagates the terminal size to the panels.
func (m *Model) resize() {
	m.help.Width = m.width
	l := m.layout()
	m.folders.SetSize(l.folderWidth, l.panelHeight)
	m.tracks.SetSize(l.trackWidth, l.panelHeight)
}

func (m Model) helpKeys() keymap.Help {
	if m.ctrl.State().IsSeeking {
		return keymap.NewHelp(keymap.ContextSeek, keymap.ContextGlobal)
	}
	return keymap.NewHelp(keymap.ContextGlobal, keymap.ContextPlayback, keymap.ContextNavigation)
}
