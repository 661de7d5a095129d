package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/albums/internal/player"
)

func fetchFoldersCmd(ctx context.Context, l Lister, seq uint64) tea.Cmd {
	return func() tea.Msg {
		folders, err := l.Folders(ctx)
		return FoldersLoadedMsg{Seq: seq, Folders: folders, Err: err}
	}
}

func fetchTracksCmd(ctx context.Context, l Lister, seq uint64, folder string) tea.Cmd {
	return func() tea.Msg {
		res, err := l.Fetch(ctx, folder)
		return TracksLoadedMsg{Seq: seq, Folder: folder, Result: res, Err: err}
	}
}

// waitForPlayerEvent blocks until the loader reports an event. The handler
// re-arms it after each event.
func waitForPlayerEvent(ch <-chan player.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return PlayerEventMsg{Event: ev}
	}
}

func (m Model) waitForRemote() tea.Cmd {
	if m.remote == nil || m.remote.Commands() == nil {
		return nil
	}
	ch := m.remote.Commands()
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return RemoteCommandMsg{Command: c}
	}
}

func waitForStderr(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}
