//go:build linux

package mpris

import (
	"github.com/cockroachdb/errors"
	"github.com/quarckster/go-mpris-server/pkg/server"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/playback"
)

// ErrClosed is returned for calls arriving after Close.
var ErrClosed = errors.New("media controls closed")

// Adapter serves the MPRIS interfaces on the session bus.
type Adapter struct {
	server   *server.Server
	snap     *snapshot
	commands chan Command
	done     chan struct{}
}

// New creates and starts the adapter.
func New() (*Adapter, error) {
	a := &Adapter{
		snap:     &snapshot{},
		commands: make(chan Command, commandBuffer),
		done:     make(chan struct{}),
	}
	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{snap: a.snap, send: a.send})

	go func() {
		if err := a.server.Listen(); err != nil {
			zlog.Warn().Err(err).Msg("media controls stopped")
		}
	}()

	return a, nil
}

// Commands returns the channel remote requests arrive on.
func (a *Adapter) Commands() <-chan Command {
	return a.commands
}

// Observe records the state served to D-Bus readers.
func (a *Adapter) Observe(s playback.State, tracks int) {
	a.snap.set(s, tracks)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

func (a *Adapter) send(c Command) error {
	select {
	case a.commands <- c:
		return nil
	case <-a.done:
		return ErrClosed
	}
}
