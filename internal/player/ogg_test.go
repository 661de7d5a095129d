package player

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lacing returns the segment table and body for complete packets.
func lacing(packets ...[]byte) ([]uint8, []byte) {
	var (
		segs []uint8
		body []byte
	)
	for _, p := range packets {
		n := len(p)
		for n >= 255 {
			segs = append(segs, 255)
			n -= 255
		}
		segs = append(segs, uint8(n)) //nolint:gosec // n < 255
		body = append(body, p...)
	}
	return segs, body
}

func oggPageBytes(headerType uint8, granule int64, serial, seq uint32, segs []uint8, body []byte) []byte {
	b := make([]byte, oggHeaderLen, oggHeaderLen+len(segs)+len(body))
	copy(b, "OggS")
	b[5] = headerType
	binary.LittleEndian.PutUint64(b[6:], uint64(granule)) //nolint:gosec // test data
	binary.LittleEndian.PutUint32(b[14:], serial)
	binary.LittleEndian.PutUint32(b[18:], seq)
	b[26] = uint8(len(segs)) //nolint:gosec // test data
	b = append(b, segs...)
	return append(b, body...)
}

func filled(n int, v byte) []byte {
	return bytes.Repeat([]byte{v}, n)
}

func TestParseOggPageHeader(t *testing.T) {
	segs, body := lacing([]byte("abc"))
	page := oggPageBytes(oggContinued, 4242, 7, 3, segs, body)

	hdr, err := parseOggPageHeader(bytes.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, uint8(oggContinued), hdr.HeaderType)
	assert.Equal(t, int64(4242), hdr.GranulePos)
	assert.Equal(t, uint32(7), hdr.SerialNumber)
	assert.Equal(t, uint32(3), hdr.SequenceNum)
	assert.Equal(t, []uint8{3}, hdr.SegmentTable)
	assert.Equal(t, 3, hdr.bodyLen())
}

func TestParseOggPageHeader_Invalid(t *testing.T) {
	good := oggPageBytes(0, 0, 1, 0, nil, nil)

	badMagic := bytes.Clone(good)
	copy(badMagic, "OggX")
	_, err := parseOggPageHeader(bytes.NewReader(badMagic))
	assert.ErrorIs(t, err, errInvalidOggMagic)

	badVersion := bytes.Clone(good)
	badVersion[4] = 1
	_, err = parseOggPageHeader(bytes.NewReader(badVersion))
	assert.ErrorIs(t, err, errInvalidOggVersion)
}

func TestReadOggPages_Packets(t *testing.T) {
	segs, body := lacing([]byte("one"), filled(300, 2), nil)
	data := oggPageBytes(0, 100, 1, 0, segs, body)

	pages, err := readOggPages(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, pages, 1)

	p := pages[0]
	assert.Equal(t, int64(0), p.start)
	assert.Equal(t, int64(100), p.granule)
	require.Len(t, p.packets, 3)
	assert.Equal(t, []byte("one"), p.packets[0])
	assert.Equal(t, filled(300, 2), p.packets[1])
	assert.Empty(t, p.packets[2])
}

func TestReadOggPages_SpanningPacket(t *testing.T) {
	long := filled(300, 9)
	var data []byte
	// No packet ends on the first page, so it carries no granule.
	data = append(data, oggPageBytes(0, noGranule, 1, 0, []uint8{255}, long[:255])...)
	segs, body := lacing(long[255:], []byte("xy"))
	data = append(data, oggPageBytes(oggContinued, 960, 1, 1, segs, body)...)
	segs, body = lacing([]byte("z"))
	data = append(data, oggPageBytes(0, 1920, 1, 2, segs, body)...)

	pages, err := readOggPages(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Empty(t, pages[0].packets)
	assert.Equal(t, [][]byte{long, []byte("xy")}, pages[1].packets)
	assert.Equal(t, int64(0), pages[1].start)
	assert.Equal(t, int64(960), pages[2].start)
}

func TestReadOggPages_DropsOrphanContinuation(t *testing.T) {
	var data []byte
	data = append(data, oggPageBytes(0, noGranule, 1, 0, []uint8{255}, filled(255, 1))...)
	// Not flagged as a continuation, so the pending partial packet is lost.
	segs, body := lacing([]byte("new"))
	data = append(data, oggPageBytes(0, 10, 1, 1, segs, body)...)

	pages, err := readOggPages(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, [][]byte{[]byte("new")}, pages[1].packets)
}

func TestReadOggPages_SkipsOtherStreams(t *testing.T) {
	var data []byte
	segs, body := lacing([]byte("a"))
	data = append(data, oggPageBytes(0, 0, 1, 0, segs, body)...)
	segs, body = lacing([]byte("other"))
	data = append(data, oggPageBytes(0, 0, 2, 0, segs, body)...)
	segs, body = lacing([]byte("b"))
	data = append(data, oggPageBytes(0, 5, 1, 1, segs, body)...)

	pages, err := readOggPages(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, [][]byte{[]byte("b")}, pages[1].packets)
}

func TestReadOggPages_TruncatedTail(t *testing.T) {
	segs, body := lacing([]byte("full"))
	data := oggPageBytes(0, 10, 1, 0, segs, body)
	segs, body = lacing(filled(50, 3))
	second := oggPageBytes(0, 20, 1, 1, segs, body)
	data = append(data, second[:len(second)-10]...)

	pages, err := readOggPages(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}

func TestReadOggPages_Empty(t *testing.T) {
	_, err := readOggPages(bytes.NewReader(nil))
	assert.ErrorIs(t, err, errEmptyOgg)

	_, err = readOggPages(bytes.NewReader([]byte("RIFF....WAVE and more bytes here")))
	assert.ErrorIs(t, err, errInvalidOggMagic)
}
