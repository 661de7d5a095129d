// internal/player/mock.go
package player

import (
	"time"

	"github.com/llehouerou/albums/internal/playlist"
)

// MockLoader is a test double for Loader. It records every Audio it creates.
type MockLoader struct {
	audios []*MockAudio
	events chan Event
	nextID uint64
}

// NewMockLoader creates a new mock loader for testing.
func NewMockLoader() *MockLoader {
	return &MockLoader{events: make(chan Event, eventBufferSize)}
}

func (l *MockLoader) Load(track playlist.Track, volume float64) Audio {
	l.nextID++
	a := &MockAudio{
		id:     l.nextID,
		track:  track,
		state:  Loading,
		volume: volume,
	}
	l.audios = append(l.audios, a)
	return a
}

func (l *MockLoader) Events() <-chan Event { return l.events }

// Test helpers

// Audios returns every instance created, oldest first.
func (l *MockLoader) Audios() []*MockAudio { return l.audios }

// Last returns the most recently created instance, or nil.
func (l *MockLoader) Last() *MockAudio {
	if len(l.audios) == 0 {
		return nil
	}
	return l.audios[len(l.audios)-1]
}

// Emit queues an event as if an instance had sent it.
func (l *MockLoader) Emit(ev Event) { l.events <- ev }

// MockAudio is a test double for Audio.
type MockAudio struct {
	id        uint64
	track     playlist.Track
	state     State
	volume    float64
	playCalls int
	pauses    int
	seekCalls []time.Duration
}

func (a *MockAudio) ID() uint64 { return a.id }

func (a *MockAudio) Play() {
	a.playCalls++
	if a.state != Closed {
		a.state = Playing
	}
}

func (a *MockAudio) Pause() {
	a.pauses++
	if a.state == Playing {
		a.state = Paused
	}
}

func (a *MockAudio) Seek(position time.Duration) {
	a.seekCalls = append(a.seekCalls, position)
}

func (a *MockAudio) SetVolume(level float64) { a.volume = ClampLevel(level) }

func (a *MockAudio) Close() { a.state = Closed }

// Track returns the track the instance was loaded with.
func (a *MockAudio) Track() playlist.Track { return a.track }

// State returns the simulated state.
func (a *MockAudio) State() State { return a.state }

// Volume returns the last volume set.
func (a *MockAudio) Volume() float64 { return a.volume }

// PlayCalls returns how many times Play was called.
func (a *MockAudio) PlayCalls() int { return a.playCalls }

// PauseCalls returns how many times Pause was called.
func (a *MockAudio) PauseCalls() int { return a.pauses }

// SeekCalls returns the positions passed to Seek.
func (a *MockAudio) SeekCalls() []time.Duration { return a.seekCalls }

// Closed returns true once Close was called.
func (a *MockAudio) Closed() bool { return a.state == Closed }

// Verify mocks implement their interfaces at compile time.
var (
	_ Loader = (*MockLoader)(nil)
	_ Audio  = (*MockAudio)(nil)
)
