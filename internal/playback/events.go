package playback

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/player"
)

// HandleEvent applies a notification from the playback primitive.
// Events from an instance that has since been torn down are ignored; the
// return value reports whether the event was applied.
func (c *Controller) HandleEvent(ev player.Event) bool {
	if c.audio == nil || ev.Source != c.audio.ID() {
		return false
	}

	switch ev.Kind {
	case player.EventMetadata:
		c.state.Loading = false
		c.state.Duration = ev.Duration
		c.state.Meta = ev.Meta
		c.notify()

	case player.EventPosition:
		c.OnPositionTick(ev.Position, ev.Duration)

	case player.EventEnded:
		c.handleEnded()

	case player.EventError:
		zlog.Error().Err(ev.Err).Int("index", c.state.CurrentIndex).Msg("playback failed")
		c.teardown()
		c.state.IsPlaying = false
		c.state.IsSeeking = false
		c.state.Loading = false
		c.state.Err = ev.Err
		c.notify()
	}
	return true
}

func (c *Controller) handleEnded() {
	if c.onEnd == EndAdvance {
		c.Next()
		return
	}
	c.state.IsPlaying = false
	c.state.Ended = true
	c.state.Position = c.state.Duration
	c.notify()
}
