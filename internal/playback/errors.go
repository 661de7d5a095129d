package playback

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrOutOfRange is matched by errors.Is for every *OutOfRangeError.
var ErrOutOfRange = errors.New("track index out of range")

// OutOfRangeError is returned when a track index is outside the playlist.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("track index %d out of range [0,%d)", e.Index, e.Len)
}

// Is reports ErrOutOfRange as a match.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
