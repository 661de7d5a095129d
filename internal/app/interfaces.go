package app

import (
	"context"

	"github.com/llehouerou/albums/internal/listing"
	"github.com/llehouerou/albums/internal/mpris"
	"github.com/llehouerou/albums/internal/playback"
)

// Lister fetches directory listings. *listing.Client implements it.
type Lister interface {
	Fetch(ctx context.Context, folder string) (*listing.Result, error)
	Folders(ctx context.Context) ([]string, error)
}

// Remote is a desktop media control surface. *mpris.Adapter implements it.
type Remote interface {
	Commands() <-chan mpris.Command
	Observe(s playback.State, tracks int)
	Close() error
}

// Verify implementations at compile time.
var (
	_ Lister = (*listing.Client)(nil)
	_ Remote = (*mpris.Adapter)(nil)
)
