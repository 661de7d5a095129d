package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Play starts or resumes playback. After the end of the media it restarts
// from the beginning, or from the last seek position.
func (a *beepAudio) Play() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Loading {
		a.wantPlay = true
		return
	}
	if !a.state.CanResume() {
		return
	}

	rewind, restart := resumeFrom(a.state, a.rewound)
	speaker.Lock()
	if rewind {
		_ = a.streamer.Seek(0)
	}
	a.ctrl.Paused = false
	speaker.Unlock()
	if restart {
		a.start()
	}
	a.state = Playing
}

// resumeFrom tells Play how to leave state s. An ended stream was removed
// from the speaker and must be restarted, from the beginning unless a seek
// moved it since.
func resumeFrom(s State, rewound bool) (rewind, restart bool) {
	if s != Ended {
		return false, false
	}
	return !rewound, true
}

// Pause pauses playback. Before the media is loaded it only cancels autoplay.
func (a *beepAudio) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Loading {
		a.wantPlay = false
		return
	}
	if !a.state.CanPause() {
		return
	}
	speaker.Lock()
	a.ctrl.Paused = true
	speaker.Unlock()
	a.state = Paused
}

// Seek moves to an absolute position, clamped to the media.
func (a *beepAudio) Seek(position time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.streamer == nil || a.state == Closed {
		return
	}

	n := clampSample(a.format.SampleRate.N(position), a.streamer.Len())

	speaker.Lock()
	_ = a.streamer.Seek(n)
	speaker.Unlock()

	if a.state == Ended {
		a.rewound = true
	}
}

// clampSample keeps a seek target inside a stream of length samples. The
// last sample is the furthest target so a seek never ends the stream.
func clampSample(n, length int) int {
	return min(max(n, 0), max(length-1, 0))
}

// SetVolume sets the volume level (0.0 to 1.0).
func (a *beepAudio) SetVolume(level float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.level = ClampLevel(level)
	if a.volume == nil {
		return
	}
	vol, silent := levelToVolume(a.level)
	speaker.Lock()
	a.volume.Volume = vol
	a.volume.Silent = silent
	speaker.Unlock()
}

// Close stops playback, cancels a pending download and releases the stream.
func (a *beepAudio) Close() {
	a.mu.Lock()
	if a.state == Closed {
		a.mu.Unlock()
		return
	}
	a.state = Closed
	a.cancel()
	close(a.done)
	streamer := a.streamer
	a.streamer = nil
	a.mu.Unlock()

	if streamer != nil {
		speaker.Clear()
		streamer.Close()
	}
}
