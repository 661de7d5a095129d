// Package mpris exposes playback to desktop media controls over D-Bus.
//
// D-Bus calls arrive on the bus goroutine. They never touch the controller:
// writes become Commands the app applies on its own loop, and reads are
// answered from a snapshot the app refreshes through Observe.
package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/albums/internal/playback"
)

const (
	busName  = "albums"
	identity = "albums"

	commandBuffer = 16
)

// CommandKind is a remote control request.
type CommandKind int

const (
	CmdPlay CommandKind = iota
	CmdPause
	CmdPlayPause
	CmdNext
	CmdPrevious
	CmdSeek        // relative, Offset
	CmdSetPosition // absolute, Position
	CmdSetVolume   // Volume
)

// Command is a remote request to apply to the controller.
type Command struct {
	Kind     CommandKind
	Offset   time.Duration
	Position time.Duration
	Volume   float64
}

// snapshot is the last state observed, read by D-Bus property getters.
type snapshot struct {
	mu     sync.RWMutex
	state  playback.State
	tracks int
}

func (s *snapshot) set(state playback.State, tracks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.tracks = tracks
}

func (s *snapshot) get() (playback.State, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.tracks
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }
func (r *rootAdapter) Quit() error  { return nil }

func (r *rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (r *rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (r *rootAdapter) Identity() (string, error)   { return identity, nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg", "audio/opus"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	snap *snapshot
	send func(Command) error
}

func (p *playerAdapter) Next() error      { return p.send(Command{Kind: CmdNext}) }
func (p *playerAdapter) Previous() error  { return p.send(Command{Kind: CmdPrevious}) }
func (p *playerAdapter) Pause() error     { return p.send(Command{Kind: CmdPause}) }
func (p *playerAdapter) PlayPause() error { return p.send(Command{Kind: CmdPlayPause}) }
func (p *playerAdapter) Play() error      { return p.send(Command{Kind: CmdPlay}) }

// Stop pauses: a selected track stays selected.
func (p *playerAdapter) Stop() error { return p.send(Command{Kind: CmdPause}) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(Command{Kind: CmdSeek, Offset: time.Duration(offset) * time.Microsecond})
}

// SetPosition is ignored when trackID is not the current track.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	s, _ := p.snap.get()
	if s.Track == nil || trackID != formatTrackID(s.Track.URL) {
		return nil
	}
	return p.send(Command{Kind: CmdSetPosition, Position: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s, _ := p.snap.get()
	return playbackStatus(s), nil
}

func (p *playerAdapter) Rate() (float64, error)        { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error       { return nil }
func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s, _ := p.snap.get()
	return metadata(s), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	s, _ := p.snap.get()
	return s.Volume, nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	return p.send(Command{Kind: CmdSetVolume, Volume: level})
}

func (p *playerAdapter) Position() (int64, error) {
	s, _ := p.snap.get()
	return s.Position.Microseconds(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	_, n := p.snap.get()
	return n > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	_, n := p.snap.get()
	return n > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	s, n := p.snap.get()
	return n > 0 || s.HasTrack(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	s, _ := p.snap.get()
	return s.HasTrack(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	s, _ := p.snap.get()
	return s.HasTrack() && s.Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s.Phase() {
	case playback.PhaseIdle:
		return types.PlaybackStatusStopped
	case playback.PhasePlaying, playback.PhaseLoading:
		if s.IsPlaying {
			return types.PlaybackStatusPlaying
		}
		return types.PlaybackStatusPaused
	case playback.PhasePaused, playback.PhaseSeeking:
		return types.PlaybackStatusPaused
	}
	return types.PlaybackStatusStopped
}

func metadata(s playback.State) types.Metadata {
	if s.Track == nil {
		return types.Metadata{}
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.Track.URL)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Title(),
		Album:   s.Meta.Album,
	}
	if s.Meta.Artist != "" {
		meta.Artist = []string{s.Meta.Artist}
	}
	return meta
}

func formatTrackID(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
