package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/errmsg"
	"github.com/llehouerou/albums/internal/playlist"
)

// loadFolders starts folder discovery.
func (m *Model) loadFolders() tea.Cmd {
	ctx, seq := m.folderFetch.start()
	m.folders.SetLoading(true)
	return fetchFoldersCmd(ctx, m.lister, seq)
}

// openFolder starts fetching the listing of folder. A fetch still in
// flight is cancelled and its response ignored. Playback continues until
// the new listing arrives.
func (m *Model) openFolder(folder string) tea.Cmd {
	ctx, seq := m.trackFetch.start()
	zlog.Debug().Str("folder", folder).Uint64("seq", seq).Msg("opening folder")
	m.folders.SetActive(folder)
	m.tracks.SetLoading(folder)
	return fetchTracksCmd(ctx, m.lister, seq, folder)
}

func (m Model) handleFoldersLoaded(msg FoldersLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.folderFetch.finish(msg.Seq) {
		return m, nil
	}
	if msg.Err != nil {
		zlog.Error().Err(msg.Err).Msg("folder discovery failed")
		m.folders.SetError(errmsg.Format(errmsg.OpFoldersList, msg.Err))
		return m, nil
	}
	m.folders.SetFolders(msg.Folders)
	return m, nil
}

// handleTracksLoaded replaces the playlist with the fetched listing. A
// failed fetch leaves an empty playlist for the folder.
func (m Model) handleTracksLoaded(msg TracksLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.trackFetch.finish(msg.Seq) {
		zlog.Debug().Str("folder", msg.Folder).Uint64("seq", msg.Seq).Msg("ignoring stale listing")
		return m, nil
	}
	if msg.Err != nil {
		zlog.Error().Err(msg.Err).Str("folder", msg.Folder).Msg("folder listing failed")
		pl := playlist.New(msg.Folder)
		m.ctrl.LoadPlaylist(pl)
		m.tracks.SetPlaylist(pl)
		m.tracks.SetError(errmsg.FormatWith(errmsg.OpFolderLoad, msg.Folder, msg.Err))
		return m, nil
	}

	pl := msg.Result.Playlist()
	m.ctrl.LoadPlaylist(pl)
	m.tracks.SetPlaylist(pl)
	m.folders.SetActive(msg.Folder)
	if len(msg.Result.Skipped) > 0 {
		m.status = pluralSkipped(len(msg.Result.Skipped))
	}
	return m, nil
}

// refresh fetches the active folder again, and the folder list when it
// is discovered.
func (m *Model) refresh() tea.Cmd {
	var cmds []tea.Cmd
	if m.discover {
		cmds = append(cmds, m.loadFolders())
	}
	if folder := m.folders.Active(); folder != "" {
		cmds = append(cmds, m.openFolder(folder))
	}
	return tea.Batch(cmds...)
}

func pluralSkipped(n int) string {
	if n == 1 {
		return "1 entry skipped"
	}
	return fmt.Sprintf("%d entries skipped", n)
}
