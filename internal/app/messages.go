package app

import (
	"github.com/llehouerou/albums/internal/listing"
	"github.com/llehouerou/albums/internal/mpris"
	"github.com/llehouerou/albums/internal/player"
)

// FoldersLoadedMsg carries the result of folder discovery.
type FoldersLoadedMsg struct {
	Seq     uint64
	Folders []string
	Err     error
}

// TracksLoadedMsg carries the listing of a folder.
type TracksLoadedMsg struct {
	Seq    uint64
	Folder string
	Result *listing.Result
	Err    error
}

// PlayerEventMsg wraps a notification from the playback primitive.
type PlayerEventMsg struct {
	Event player.Event
}

// RemoteCommandMsg wraps a media control request.
type RemoteCommandMsg struct {
	Command mpris.Command
}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}
