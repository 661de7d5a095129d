// Package tracklist renders the playlist panel: one row per track with a
// play/pause label, the active row highlighted.
package tracklist

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/albums/internal/keymap"
	"github.com/llehouerou/albums/internal/playlist"
	"github.com/llehouerou/albums/internal/ui/action"
	"github.com/llehouerou/albums/internal/ui/list"
)

// Source identifies messages from this panel.
const Source = "tracklist"

// PlayTrack asks the app to select the track at Index.
type PlayTrack struct {
	Index int
}

func (PlayTrack) ActionType() string { return "tracklist.play" }

// Model is the playlist panel.
type Model struct {
	list.Model[playlist.Track]

	folder  string
	current int // index of the active track, -1 if none
	playing bool
	loading bool
	err     string
	spinner string
}

// New creates an empty panel.
func New() Model {
	return Model{
		Model:   list.New[playlist.Track](),
		current: -1,
	}
}

// SetPlaylist shows the tracks of a freshly loaded folder.
func (m *Model) SetPlaylist(pl *playlist.Playlist) {
	if pl == nil {
		pl = playlist.Empty()
	}
	m.folder = pl.Folder()
	m.Reset(pl.Tracks())
	m.current = -1
	m.playing = false
	m.loading = false
	m.err = ""
}

// SetPlayback marks the active track. When the active track changes the
// cursor follows it.
func (m *Model) SetPlayback(current int, playing bool) {
	if current != m.current && current >= 0 {
		m.Jump(current)
	}
	m.current = current
	m.playing = playing
}

// SetLoading shows the spinner for folder while its listing is fetched.
func (m *Model) SetLoading(folder string) {
	m.folder = folder
	m.loading = true
	m.err = ""
	m.Reset(nil)
	m.current = -1
}

// SetError shows a fetch failure in place of the tracks.
func (m *Model) SetError(msg string) {
	m.loading = false
	m.err = msg
}

// SetSpinnerFrame sets the spinner frame shown while loading.
func (m *Model) SetSpinnerFrame(frame string) {
	m.spinner = frame
}

// Loading returns true while a listing is being fetched.
func (m Model) Loading() bool {
	return m.loading
}

// Folder returns the folder shown.
func (m Model) Folder() string {
	return m.folder
}

// Current returns the index of the active track.
func (m Model) Current() int {
	return m.current
}

// HandleAction applies a navigation action. Select asks to play the track
// under the cursor.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd) {
	cmd := m.result(m.Model.HandleAction(a))
	return m, cmd
}

// HandleMouse handles a mouse event with Y relative to the panel top.
// Clicking a row asks to play it.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	cmd := m.result(m.Model.HandleMouse(msg))
	return m, cmd
}

func (m Model) result(res list.Result) tea.Cmd {
	if res.Action != list.ActionActivate {
		return nil
	}
	return action.Cmd(Source, PlayTrack{Index: res.Index})
}
