package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/albums/internal/mpris"
	"github.com/llehouerou/albums/internal/ui/folderlist"
	"github.com/llehouerou/albums/internal/ui/playerbar"
	"github.com/llehouerou/albums/internal/ui/testutil"
)

func openFolder(name string) folderlist.OpenFolder {
	return folderlist.OpenFolder{Name: name}
}

// click presses the left button at x, y and returns the resulting command.
func click(t *testing.T, m *Model, x, y int) tea.Cmd {
	t.Helper()
	next, cmd := updateModel(t, *m, testutil.Press(x, y))
	*m = next
	return cmd
}

func playerbarLayout(m Model) playerbar.Layout {
	return playerbar.LayoutOf(m.barState(m.layout().barMode), m.width)
}

func remotePlay() mpris.Command  { return mpris.Command{Kind: mpris.CmdPlay} }
func remotePause() mpris.Command { return mpris.Command{Kind: mpris.CmdPause} }
func remoteNext() mpris.Command  { return mpris.Command{Kind: mpris.CmdNext} }

func remoteSetPosition(d time.Duration) mpris.Command {
	return mpris.Command{Kind: mpris.CmdSetPosition, Position: d}
}

func remoteVolume(v float64) mpris.Command {
	return mpris.Command{Kind: mpris.CmdSetVolume, Volume: v}
}
