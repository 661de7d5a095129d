package player

import (
	"bytes"

	"github.com/dhowden/tag"
)

// readMeta reads embedded tags from the downloaded media.
// Missing or unreadable tags leave the fields empty; the listing name is
// the fallback title.
func readMeta(data []byte) Meta {
	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return Meta{Size: int64(len(data))}
	}

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}

	return Meta{
		Title:  m.Title(),
		Artist: artist,
		Album:  m.Album(),
		Size:   int64(len(data)),
	}
}
