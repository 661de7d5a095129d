package player

import (
	"encoding/binary"
	"testing"
)

// id3v23 builds an ID3v2.3 tag holding Latin-1 text frames, followed by a
// single MP3 frame header and padding.
func id3v23(frames map[string]string) []byte {
	var body []byte
	for _, id := range []string{"TIT2", "TPE1", "TALB"} {
		text, ok := frames[id]
		if !ok {
			continue
		}
		payload := append([]byte{0x00}, text...)
		hdr := make([]byte, 10)
		copy(hdr, id)
		binary.BigEndian.PutUint32(hdr[4:], uint32(len(payload))) //nolint:gosec // test data
		body = append(body, hdr...)
		body = append(body, payload...)
	}

	size := len(body)
	header := []byte{
		'I', 'D', '3', 3, 0, 0,
		byte(size >> 21 & 0x7f), byte(size >> 14 & 0x7f), byte(size >> 7 & 0x7f), byte(size & 0x7f),
	}

	frame := make([]byte, 417)
	frame[0], frame[1], frame[2] = 0xff, 0xfb, 0x90

	out := append(header, body...)
	return append(out, frame...)
}

func TestReadMeta_ID3(t *testing.T) {
	data := id3v23(map[string]string{
		"TIT2": "Blue in Green",
		"TPE1": "Miles Davis",
		"TALB": "Kind of Blue",
	})

	meta := readMeta(data)

	if meta.Title != "Blue in Green" {
		t.Errorf("Title = %q, want Blue in Green", meta.Title)
	}
	if meta.Artist != "Miles Davis" {
		t.Errorf("Artist = %q, want Miles Davis", meta.Artist)
	}
	if meta.Album != "Kind of Blue" {
		t.Errorf("Album = %q, want Kind of Blue", meta.Album)
	}
	if meta.Size != int64(len(data)) {
		t.Errorf("Size = %d, want %d", meta.Size, len(data))
	}
}

func TestReadMeta_NoTags(t *testing.T) {
	data := []byte("definitely not audio")

	meta := readMeta(data)

	if meta.Title != "" || meta.Artist != "" || meta.Album != "" {
		t.Errorf("expected empty tags, got %+v", meta)
	}
	if meta.Size != int64(len(data)) {
		t.Errorf("Size = %d, want %d", meta.Size, len(data))
	}
}
