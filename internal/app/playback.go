package app

import (
	"math"
	"time"

	"github.com/llehouerou/albums/internal/mpris"
	"github.com/llehouerou/albums/internal/playback"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.05
)

// seekBy moves playback by delta in one step, going through the seeking
// sub-state so the controller stays the only writer of the position.
func (m *Model) seekBy(delta time.Duration) {
	s := m.ctrl.State()
	m.seekTo(s.Position + delta)
}

// seekTo moves playback to an absolute position.
func (m *Model) seekTo(pos time.Duration) {
	s := m.ctrl.State()
	if s.Duration <= 0 || s.IsSeeking {
		return
	}
	m.ctrl.BeginSeek()
	if !m.ctrl.State().IsSeeking {
		return
	}
	m.ctrl.CommitSeek(fractionOf(pos, s.Duration))
}

// enterSeekMode starts a keyboard seek. The preview moves with the arrows
// until it is committed.
func (m *Model) enterSeekMode() {
	s := m.ctrl.State()
	if s.Duration <= 0 {
		return
	}
	m.seekOrigin = s.Fraction()
	m.ctrl.BeginSeek()
}

func (m *Model) movePreview(delta time.Duration) {
	s := m.ctrl.State()
	m.ctrl.UpdateSeekPreview(fractionOf(s.Preview+delta, s.Duration))
}

// changeVolume steps the volume, rounded to whole percents.
func (m *Model) changeVolume(delta float64) {
	level := math.Round((m.ctrl.State().Volume+delta)*100) / 100
	m.ctrl.SetVolume(level)
}

// toggleMute sets the volume to zero, or back to where it was.
func (m *Model) toggleMute() {
	if v := m.ctrl.State().Volume; v > 0 {
		m.unmuteTo = v
		m.ctrl.SetVolume(0)
		return
	}
	m.ctrl.SetVolume(m.unmuteTo)
}

// handleRemote applies a media control request.
func (m *Model) handleRemote(c mpris.Command) {
	s := m.ctrl.State()
	switch c.Kind {
	case mpris.CmdPlay:
		switch {
		case !s.HasTrack():
			if m.ctrl.Playlist().Len() > 0 {
				_ = m.ctrl.SelectTrack(0)
			}
		case !s.IsPlaying:
			m.ctrl.TogglePlayPause()
		}
	case mpris.CmdPause:
		if s.IsPlaying {
			m.ctrl.TogglePlayPause()
		}
	case mpris.CmdPlayPause:
		m.ctrl.TogglePlayPause()
	case mpris.CmdNext:
		m.ctrl.Next()
	case mpris.CmdPrevious:
		m.ctrl.Previous()
	case mpris.CmdSeek:
		m.seekBy(c.Offset)
	case mpris.CmdSetPosition:
		m.seekTo(c.Position)
	case mpris.CmdSetVolume:
		m.ctrl.SetVolume(c.Volume)
	}
}

func fractionOf(pos, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return playback.ClampFraction(float64(pos) / float64(total))
}
