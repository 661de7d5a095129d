// Package playerbar renders the bottom bar: transport controls, song name,
// progress bar, elapsed/total time and volume.
package playerbar

import (
	"time"

	"github.com/llehouerou/albums/internal/errmsg"
	"github.com/llehouerou/albums/internal/playback"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single-line view
	ModeExpanded                    // Adds a line with tags and format
)

// State holds everything needed to render the player bar.
type State struct {
	HasTrack bool
	Playing  bool
	Seeking  bool
	Loading  bool
	Title    string
	Artist   string
	Album    string
	Format   string        // "MP3", "FLAC", ...
	Size     int64         // downloaded bytes
	Position time.Duration // preview position while seeking
	Duration time.Duration
	Fraction float64
	Volume   float64
	Err      string
	Spinner  string // frame shown while loading
	Mode     DisplayMode
}

// NewState builds the render state from the controller state.
func NewState(ps playback.State, mode DisplayMode, spinner string) State {
	s := State{
		HasTrack: ps.HasTrack(),
		Playing:  ps.IsPlaying,
		Seeking:  ps.IsSeeking,
		Loading:  ps.Loading,
		Title:    ps.Title(),
		Artist:   ps.Meta.Artist,
		Album:    ps.Meta.Album,
		Format:   ps.Meta.Format,
		Size:     ps.Meta.Size,
		Position: ps.DisplayPosition(),
		Duration: ps.Duration,
		Fraction: ps.Fraction(),
		Volume:   ps.Volume,
		Spinner:  spinner,
		Mode:     mode,
	}
	if ps.Err != nil {
		s.Err = errmsg.Format(errmsg.OpPlaybackLoad, ps.Err)
	}
	return s
}

// Height returns the total height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return 4 // 2 content rows + 2 border rows
	}
	return 3 // top border + content + bottom border
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	c := compose(s, width)
	lines := []string{c.line(s)}
	if s.Mode == ModeExpanded {
		lines = append(lines, renderDetails(s, c.inner))
	}
	return barStyle(width, lines...)
}
