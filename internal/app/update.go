package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/errmsg"
	"github.com/llehouerou/albums/internal/ui/action"
	"github.com/llehouerou/albums/internal/ui/folderlist"
	"github.com/llehouerou/albums/internal/ui/tracklist"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	result, cmd := m.update(msg)
	next, ok := result.(Model)
	if !ok {
		return result, cmd
	}
	next.resize()
	next.syncPanels()
	if spin := next.startSpinner(); spin != nil {
		cmd = tea.Batch(cmd, spin)
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if !m.loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case action.Msg:
		return m.handleAction(msg)

	case FoldersLoadedMsg:
		return m.handleFoldersLoaded(msg)

	case TracksLoadedMsg:
		return m.handleTracksLoaded(msg)

	case PlayerEventMsg:
		m.ctrl.HandleEvent(msg.Event)
		return m, waitForPlayerEvent(m.loader.Events())

	case RemoteCommandMsg:
		m.handleRemote(msg.Command)
		return m, m.waitForRemote()

	case StderrMsg:
		m.status = msg.Line
		return m, waitForStderr(m.stderr)
	}
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case folderlist.OpenFolder:
		cmd := m.openFolder(a.Name)
		m.setFocus(FocusTracks)
		return m, cmd
	case tracklist.PlayTrack:
		if err := m.ctrl.SelectTrack(a.Index); err != nil {
			zlog.Warn().Err(err).Msg("select track")
			m.status = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	}
	return m, nil
}

// syncPanels copies the playback state into the panels that show it.
func (m *Model) syncPanels() {
	s := m.ctrl.State()
	m.tracks.SetPlayback(s.CurrentIndex, s.IsPlaying)

	frame := m.spinner.View()
	m.folders.SetSpinnerFrame(frame)
	m.tracks.SetSpinnerFrame(frame)
}
