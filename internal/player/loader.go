package player

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/albums/internal/playlist"
)

const (
	eventBufferSize = 64
	defaultTick     = 500 * time.Millisecond
	userAgent       = "albums-music-player/1.0 (https://github.com/llehouerou/albums)"
)

// DefaultMaxTrackSize bounds a track download held in memory.
const DefaultMaxTrackSize int64 = 512 << 20

// ErrTrackTooLarge is returned when a track body exceeds the size limit.
var ErrTrackTooLarge = errors.New("track too large")

// Verify HTTPLoader implements Loader at compile time.
var _ Loader = (*HTTPLoader)(nil)

// HTTPLoader streams tracks from their URL into beep's speaker.
type HTTPLoader struct {
	client   *http.Client
	events   chan Event
	nextID   atomic.Uint64
	tick     time.Duration
	maxBytes int64
	play     func(beep.Streamer) // speaker.Play, replaced in tests
}

// NewHTTPLoader creates a loader downloading tracks with the given client.
// A nil client uses http.DefaultClient.
func NewHTTPLoader(client *http.Client) *HTTPLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLoader{
		client:   client,
		events:   make(chan Event, eventBufferSize),
		tick:     defaultTick,
		maxBytes: DefaultMaxTrackSize,
		play:     speaker.Play,
	}
}

// SetMaxTrackSize sets the largest body, in bytes, a track download may
// have. Larger tracks fail with ErrTrackTooLarge. Values below 1 are ignored.
func (l *HTTPLoader) SetMaxTrackSize(n int64) {
	if n > 0 {
		l.maxBytes = n
	}
}

// Events returns the channel all instances report on.
func (l *HTTPLoader) Events() <-chan Event {
	return l.events
}

// Load starts downloading the track and returns its Audio instance.
func (l *HTTPLoader) Load(track playlist.Track, volume float64) Audio {
	ctx, cancel := context.WithCancel(context.Background())
	a := &beepAudio{
		id:       l.nextID.Add(1),
		loader:   l,
		track:    track,
		state:    Loading,
		wantPlay: true,
		level:    ClampLevel(volume),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go a.load(ctx)
	return a
}

// emit delivers an event without blocking the audio goroutines. Position
// events are dropped when the buffer is full since the next tick supersedes
// them; the others are delivered from a separate goroutine.
func (l *HTTPLoader) emit(ev Event) {
	select {
	case l.events <- ev:
		return
	default:
	}
	if ev.Kind == EventPosition {
		return
	}
	go func() { l.events <- ev }()
}

// fetch downloads the whole body of a track, up to maxBytes.
func (l *HTTPLoader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("unexpected status: %s", resp.Status)
	}

	if resp.ContentLength > l.maxBytes {
		return nil, errors.Wrapf(ErrTrackTooLarge, "%d bytes, limit %d", resp.ContentLength, l.maxBytes)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if int64(len(data)) > l.maxBytes {
		return nil, errors.Wrapf(ErrTrackTooLarge, "limit %d bytes", l.maxBytes)
	}
	return data, nil
}
