// internal/playback/controller.go
package playback

import (
	"math"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/player"
	"github.com/llehouerou/albums/internal/playlist"
)

// Options configures a Controller.
type Options struct {
	Volume float64   // initial volume, 0.0-1.0
	OnEnd  EndPolicy // what to do when a track ends
}

// Controller owns the playback state and the single live Audio instance.
//
// It is not safe for concurrent use: every method, HandleEvent included,
// must be called from the same goroutine (the UI update loop).
type Controller struct {
	loader   player.Loader
	observer Observer
	onEnd    EndPolicy

	playlist *playlist.Playlist
	audio    player.Audio
	state    State
}

// New creates a controller with an empty playlist.
func New(loader player.Loader, observer Observer, opts Options) *Controller {
	return &Controller{
		loader:   loader,
		observer: observer,
		onEnd:    opts.OnEnd,
		playlist: playlist.Empty(),
		state: State{
			CurrentIndex: NoTrack,
			Volume:       player.ClampLevel(opts.Volume),
		},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Playlist returns the active playlist.
func (c *Controller) Playlist() *playlist.Playlist {
	return c.playlist
}

// LoadPlaylist replaces the active playlist and resets playback.
// A track playing from the previous playlist is stopped.
func (c *Controller) LoadPlaylist(pl *playlist.Playlist) {
	if pl == nil {
		pl = playlist.Empty()
	}
	c.teardown()
	c.playlist = pl
	c.state = State{
		CurrentIndex: NoTrack,
		Volume:       c.state.Volume,
	}
	zlog.Debug().Str("folder", pl.Folder()).Int("tracks", pl.Len()).Msg("playlist loaded")
	c.notify()
}

// SelectTrack plays the track at index. Selecting the track that is
// already playing pauses it instead; selecting it while paused restarts it.
func (c *Controller) SelectTrack(index int) error {
	if index < 0 || index >= c.playlist.Len() {
		return &OutOfRangeError{Index: index, Len: c.playlist.Len()}
	}

	if index == c.state.CurrentIndex && c.state.IsPlaying {
		c.pause()
		c.notify()
		return nil
	}

	c.start(index)
	return nil
}

// TogglePlayPause flips between playing and paused. It does nothing when no
// track is selected or while a seek is in progress. A track whose load
// failed is loaded again.
func (c *Controller) TogglePlayPause() {
	if !c.state.HasTrack() || c.state.IsSeeking {
		return
	}
	if c.audio == nil {
		c.start(c.state.CurrentIndex)
		return
	}

	if c.state.IsPlaying {
		c.pause()
	} else {
		if c.state.Ended {
			c.state.Ended = false
			c.state.Position = 0
		}
		c.audio.Play()
		c.state.IsPlaying = true
	}
	c.notify()
}

// Next plays the following track, wrapping to the first.
// With nothing selected it plays the first track.
func (c *Controller) Next() {
	n := c.playlist.Len()
	if n == 0 {
		return
	}
	next := 0
	if c.state.HasTrack() {
		next = (c.state.CurrentIndex + 1) % n
	}
	c.start(next)
}

// Previous plays the preceding track, wrapping to the last.
// With nothing selected it plays the last track.
func (c *Controller) Previous() {
	n := c.playlist.Len()
	if n == 0 {
		return
	}
	prev := n - 1
	if c.state.HasTrack() {
		prev = (c.state.CurrentIndex - 1 + n) % n
	}
	c.start(prev)
}

// BeginSeek pauses playback and enters the seeking sub-state. The position
// is not changed until CommitSeek.
func (c *Controller) BeginSeek() {
	if c.audio == nil || c.state.IsSeeking {
		return
	}
	c.audio.Pause()
	c.state.IsSeeking = true
	c.state.IsPlaying = false
	c.state.Preview = c.state.Position
	c.notify()
}

// UpdateSeekPreview moves the preview position without touching playback.
// The fraction is clamped to [0,1].
func (c *Controller) UpdateSeekPreview(fraction float64) {
	if !c.state.IsSeeking {
		return
	}
	c.state.Preview = scale(fraction, c.state.Duration)
	c.notify()
}

// CommitSeek moves playback to fraction of the duration and resumes.
// The fraction is clamped to [0,1].
func (c *Controller) CommitSeek(fraction float64) {
	if !c.state.IsSeeking {
		return
	}
	target := scale(fraction, c.state.Duration)
	if c.audio != nil {
		c.audio.Seek(target)
		c.audio.Play()
	}
	c.state.Position = target
	c.state.Preview = target
	c.state.IsSeeking = false
	c.state.IsPlaying = true
	c.state.Ended = false
	c.notify()
}

// SetVolume sets the volume, clamped to [0,1], whatever the play state.
func (c *Controller) SetVolume(level float64) {
	level = player.ClampLevel(level)
	c.state.Volume = level
	if c.audio != nil {
		c.audio.SetVolume(level)
	}
	c.notify()
}

// OnPositionTick records playback progress reported by the primitive.
// It is the only path by which the elapsed time advances.
func (c *Controller) OnPositionTick(current, total time.Duration) {
	c.state.Position = current
	if total > 0 {
		c.state.Duration = total
	}
	c.notify()
}

// Close stops playback and releases the live Audio.
func (c *Controller) Close() {
	c.teardown()
}

// start tears down the live Audio and plays the track at index from 0.
func (c *Controller) start(index int) {
	c.teardown()

	track := c.playlist.Track(index)
	c.audio = c.loader.Load(*track, c.state.Volume)
	c.state = State{
		CurrentIndex: index,
		Track:        track,
		IsPlaying:    true,
		Loading:      true,
		Volume:       c.state.Volume,
	}
	zlog.Info().Int("index", index).Str("track", track.Name).Msg("playing track")
	c.notify()
}

func (c *Controller) pause() {
	if c.audio != nil {
		c.audio.Pause()
	}
	c.state.IsPlaying = false
}

func (c *Controller) teardown() {
	if c.audio != nil {
		c.audio.Close()
		c.audio = nil
	}
}

func (c *Controller) notify() {
	if c.observer != nil {
		c.observer.PlaybackChanged(c.state)
	}
}

func scale(fraction float64, d time.Duration) time.Duration {
	return time.Duration(math.Round(ClampFraction(fraction) * float64(d)))
}
