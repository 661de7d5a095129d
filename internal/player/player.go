package player

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/playlist"
)

// beepAudio plays one track through beep's speaker.
//
// Lock order: mu before speaker.Lock. The end-of-stream callback runs with
// the speaker locked, so it hands off to a goroutine before touching mu.
type beepAudio struct {
	id     uint64
	loader *HTTPLoader
	track  playlist.Track

	mu       sync.Mutex
	state    State
	wantPlay bool    // play as soon as loaded
	rewound  bool    // seeked after end, so play resumes from there
	level    float64 // 0.0-1.0
	streamer beep.StreamSeekCloser
	format   beep.Format
	duration time.Duration
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	cancel context.CancelFunc
	done   chan struct{}
}

func (a *beepAudio) ID() uint64 { return a.id }

func (a *beepAudio) load(ctx context.Context) {
	logger := zlog.With().Uint64("audio", a.id).Str("url", a.track.URL).Logger()
	logger.Debug().Msg("loading track")

	data, err := a.loader.fetch(ctx, a.track.URL)
	if err != nil {
		if ctx.Err() != nil {
			return // closed while downloading
		}
		a.fail(err)
		return
	}

	streamer, format, name, err := decode(extOf(a.track.URL), data)
	if err != nil {
		a.fail(err)
		return
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		a.fail(err)
		return
	}

	var out beep.Streamer = streamer
	if format.SampleRate != rate {
		out = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	meta := readMeta(data)
	meta.Format = name

	if !a.ready(streamer, format, out) {
		streamer.Close()
		return
	}

	a.mu.Lock()
	duration := a.duration
	a.mu.Unlock()
	logger.Debug().Str("format", name).Dur("duration", duration).Msg("track loaded")

	a.loader.emit(Event{Source: a.id, Kind: EventMetadata, Duration: duration, Meta: meta})
	go a.tickLoop()
}

// ready installs the decoded stream and hands it to the speaker. It reports
// false when the instance was closed during the download. The check and the
// start share one critical section so Close cannot slip in between.
func (a *beepAudio) ready(streamer beep.StreamSeekCloser, format beep.Format, out beep.Streamer) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Closed {
		return false
	}
	a.streamer = streamer
	a.format = format
	a.duration = format.SampleRate.D(streamer.Len())
	a.ctrl = &beep.Ctrl{Streamer: out, Paused: !a.wantPlay}
	vol, silent := levelToVolume(a.level)
	a.volume = &effects.Volume{Streamer: a.ctrl, Base: 2, Volume: vol, Silent: silent}
	if a.wantPlay {
		a.state = Playing
	} else {
		a.state = Paused
	}
	a.start()
	return true
}

// start hands the stream to the speaker mixer. Callers hold mu.
func (a *beepAudio) start() {
	a.loader.play(beep.Seq(a.volume, beep.Callback(func() {
		go a.finished()
	})))
}

func (a *beepAudio) finished() {
	a.mu.Lock()
	if a.state == Closed {
		a.mu.Unlock()
		return
	}
	a.state = Ended
	a.rewound = false
	duration := a.duration
	a.mu.Unlock()

	a.loader.emit(Event{Source: a.id, Kind: EventEnded, Position: duration, Duration: duration})
}

func (a *beepAudio) fail(err error) {
	a.mu.Lock()
	closed := a.state == Closed
	a.mu.Unlock()
	if closed {
		return
	}
	zlog.Warn().Err(err).Uint64("audio", a.id).Str("url", a.track.URL).Msg("track failed to load")
	a.loader.emit(Event{Source: a.id, Kind: EventError, Err: err})
}

// tickLoop reports the position while playing.
func (a *beepAudio) tickLoop() {
	ticker := time.NewTicker(a.loader.tick)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			a.mu.Lock()
			playing := a.state == Playing
			duration := a.duration
			a.mu.Unlock()
			if !playing {
				continue
			}
			a.loader.emit(Event{
				Source:   a.id,
				Kind:     EventPosition,
				Position: a.position(),
				Duration: duration,
			})
		}
	}
}

func (a *beepAudio) position() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.streamer == nil {
		return 0
	}
	speaker.Lock()
	n := a.streamer.Position()
	speaker.Unlock()
	return a.format.SampleRate.D(n)
}
