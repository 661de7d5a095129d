// internal/player/interface.go
package player

import (
	"time"

	"github.com/llehouerou/albums/internal/playlist"
)

// Audio is one live instance of the playback primitive, bound to a single
// track for its whole life. A new track always gets a new Audio.
type Audio interface {
	// ID identifies the instance in the events it emits.
	ID() uint64
	Play()
	Pause()
	// Seek moves to an absolute position.
	Seek(position time.Duration)
	// SetVolume sets the level (0.0 to 1.0).
	SetVolume(level float64)
	// Close stops playback and releases the instance. Events emitted after
	// Close may still arrive and must be ignored by ID.
	Close()
}

// Loader creates Audio instances and delivers their notifications.
type Loader interface {
	// Load starts loading a track and returns immediately. The instance
	// starts playing once its metadata is known unless Pause is called first.
	Load(track playlist.Track, volume float64) Audio
	// Events returns the channel all instances of this loader report on.
	Events() <-chan Event
}

// EventKind is the type of a primitive notification.
type EventKind int

const (
	// EventMetadata reports that the duration is known and playback can start.
	EventMetadata EventKind = iota
	// EventPosition reports playback progress.
	EventPosition
	// EventEnded reports that the media played to its end.
	EventEnded
	// EventError reports that the track could not be loaded or decoded.
	EventError
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMetadata:
		return "Metadata"
	case EventPosition:
		return "Position"
	case EventEnded:
		return "Ended"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Meta describes the loaded media.
type Meta struct {
	Title  string
	Artist string
	Album  string
	Format string // "MP3", "FLAC", ...
	Size   int64  // downloaded bytes
}

// Event is a notification from an Audio instance.
type Event struct {
	Source   uint64 // Audio.ID() of the emitter
	Kind     EventKind
	Position time.Duration
	Duration time.Duration
	Meta     Meta  // set on EventMetadata
	Err      error // set on EventError
}
