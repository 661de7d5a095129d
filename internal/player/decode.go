package player

import (
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
	extOpus = ".opus"
)

// ErrUnsupportedFormat is returned for files no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

// memFile is an in-memory ReadSeekCloser. Decoders need Seek for seeking.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// IsMusicFile reports whether a URL or path has a decodable extension.
func IsMusicFile(p string) bool {
	switch extOf(p) {
	case extMP3, extFLAC, extWAV, extOGG, extOpus:
		return true
	}
	return false
}

// extOf returns the lower-cased extension of a URL path, ignoring any query.
func extOf(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return strings.ToLower(path.Ext(p))
}

// decode picks a decoder by extension and decodes data held in memory.
func decode(ext string, data []byte) (beep.StreamSeekCloser, beep.Format, string, error) {
	rc := memFile{bytes.NewReader(data)}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
		name     string
	)
	switch ext {
	case extMP3:
		streamer, format, err = decodeMP3(rc)
		name = "MP3"
	case extFLAC:
		if err := skipID3v2(rc); err != nil {
			return nil, beep.Format{}, "", err
		}
		streamer, format, err = flac.Decode(rc)
		name = "FLAC"
	case extWAV:
		streamer, format, err = wav.Decode(rc)
		name = "WAV"
	case extOGG:
		streamer, format, err = vorbis.Decode(rc)
		name = "OGG"
	case extOpus:
		streamer, format, err = decodeOpus(rc)
		name = "Opus"
	default:
		return nil, beep.Format{}, "", errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return nil, beep.Format{}, "", errors.Wrapf(err, "decode %s", name)
	}
	return streamer, format, name, nil
}

// skipID3v2 skips an ID3v2 tag prepended by some taggers to FLAC files,
// which the FLAC decoder does not understand.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < len(header) || string(header[:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Tag size is a syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
