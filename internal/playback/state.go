// internal/playback/state.go
package playback

import (
	"time"

	"github.com/llehouerou/albums/internal/player"
	"github.com/llehouerou/albums/internal/playlist"
)

// NoTrack is the CurrentIndex value when nothing is selected.
const NoTrack = -1

// State is the single source of truth for what is playing and where.
// Observers receive copies; only the Controller mutates it.
type State struct {
	CurrentIndex int             // index into the active playlist, NoTrack if none
	Track        *playlist.Track // track at CurrentIndex, nil if none
	IsPlaying    bool
	IsSeeking    bool
	Loading      bool // selected track's metadata not known yet
	Ended        bool // selected track played to its end
	Position     time.Duration
	Duration     time.Duration
	Preview      time.Duration // seek preview position, valid while IsSeeking
	Volume       float64       // 0.0-1.0
	Meta         player.Meta   // tags of the loaded track
	Err          error         // load failure of the selected track
}

// HasTrack returns true if a track is selected.
func (s State) HasTrack() bool {
	return s.CurrentIndex != NoTrack
}

// DisplayPosition returns the position to show: the preview while seeking.
func (s State) DisplayPosition() time.Duration {
	if s.IsSeeking {
		return s.Preview
	}
	return s.Position
}

// Fraction returns DisplayPosition as a fraction of the duration.
func (s State) Fraction() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return ClampFraction(float64(s.DisplayPosition()) / float64(s.Duration))
}

// Title returns the tag title when present, else the listing name.
func (s State) Title() string {
	if s.Meta.Title != "" {
		return s.Meta.Title
	}
	if s.Track != nil {
		return s.Track.Name
	}
	return ""
}

// Phase is the per-track playback phase derived from State.
//
//	Idle ──select──▶ Loading ──metadata──▶ Playing ⇄ Paused
//	                                          │        │
//	                                beginSeek ▼        ▼ beginSeek
//	                                        Seeking ───commit──▶ Playing
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhasePlaying
	PhasePaused
	PhaseSeeking
)

// Phase derives the current phase.
func (s State) Phase() Phase {
	switch {
	case !s.HasTrack():
		return PhaseIdle
	case s.IsSeeking:
		return PhaseSeeking
	case s.Loading:
		return PhaseLoading
	case s.IsPlaying:
		return PhasePlaying
	default:
		return PhasePaused
	}
}

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseSeeking:
		return "Seeking"
	default:
		return "Unknown"
	}
}

// EndPolicy decides what happens when a track plays to its end.
type EndPolicy int

const (
	// EndStop leaves the track selected and paused at its end.
	EndStop EndPolicy = iota
	// EndAdvance moves on as Next does.
	EndAdvance
)

// ParseEndPolicy maps a config value to an EndPolicy. Unknown values stop.
func ParseEndPolicy(s string) EndPolicy {
	if s == "advance" {
		return EndAdvance
	}
	return EndStop
}

// String returns the config value of the policy.
func (p EndPolicy) String() string {
	if p == EndAdvance {
		return "advance"
	}
	return "stop"
}

// ClampFraction clamps a seek fraction to the 0.0-1.0 range.
func ClampFraction(f float64) float64 {
	return player.ClampLevel(f)
}
