package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/albums/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.ctrl.State().IsSeeking {
		return m.handleSeekKey(m.seekKeys.Resolve(key))
	}

	a := m.playerKeys.Resolve(key)
	switch a { //nolint:exhaustive // seek-mode actions are handled above
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		if m.focus == FocusFolders {
			m.setFocus(FocusTracks)
		} else {
			m.setFocus(FocusFolders)
		}
	case keymap.ActionHelp:
		m.toggleHelp()
	case keymap.ActionRefresh:
		cmd := m.refresh()
		return m, cmd

	case keymap.ActionPlayPause:
		m.ctrl.TogglePlayPause()
	case keymap.ActionNextTrack:
		m.ctrl.Next()
	case keymap.ActionPrevTrack:
		m.ctrl.Previous()
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionSeekMode:
		m.enterSeekMode()
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
	case keymap.ActionToggleMute:
		m.toggleMute()

	case keymap.ActionMoveUp, keymap.ActionMoveDown,
		keymap.ActionJumpStart, keymap.ActionJumpEnd,
		keymap.ActionPageUp, keymap.ActionPageDown,
		keymap.ActionSelect:
		return m.navigate(a)
	}
	return m, nil
}

// handleSeekKey handles keys in seek mode: arrows move the preview, enter
// commits it and esc leaves at the position seek mode started from.
func (m Model) handleSeekKey(a keymap.Action) (tea.Model, tea.Cmd) {
	switch a { //nolint:exhaustive // only seek-mode actions resolve here
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.toggleHelp()
	case keymap.ActionSeekPreviewBack:
		m.movePreview(-seekStep)
	case keymap.ActionSeekPreviewForward:
		m.movePreview(seekStep)
	case keymap.ActionSeekCommit:
		m.ctrl.CommitSeek(m.ctrl.State().Fraction())
	case keymap.ActionSeekCancel:
		m.ctrl.CommitSeek(m.seekOrigin)
	}
	return m, nil
}

// navigate sends a list action to the focused panel.
func (m Model) navigate(a keymap.Action) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FocusFolders {
		m.folders, cmd = m.folders.HandleAction(a)
	} else {
		m.tracks, cmd = m.tracks.HandleAction(a)
	}
	return m, cmd
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	m.help.ShowAll = m.showHelp
	m.resize()
}
