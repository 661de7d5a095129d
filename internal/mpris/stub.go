//go:build !linux

package mpris

import "github.com/llehouerou/albums/internal/playback"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New() (*Adapter, error) {
	return &Adapter{}, nil
}

// Commands returns nil: no remote requests arrive.
func (a *Adapter) Commands() <-chan Command { return nil }

// Observe is a no-op on non-Linux platforms.
func (a *Adapter) Observe(_ playback.State, _ int) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
