package player

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
)

var (
	errInvalidOggMagic   = errors.New("ogg: invalid capture pattern")
	errInvalidOggVersion = errors.New("ogg: unsupported version")
	errEmptyOgg          = errors.New("ogg: no pages")
)

const (
	oggHeaderLen    = 27
	oggContinued    = 0x01 // first packet continues the previous page's last one
	noGranule       = -1
	oggLacingMaxSeg = 255
)

// oggPageHeader is the fixed part of an Ogg page plus its segment table.
type oggPageHeader struct {
	HeaderType   uint8
	GranulePos   int64
	SerialNumber uint32
	SequenceNum  uint32
	SegmentTable []uint8
}

// bodyLen is the size of the page body the segment table describes.
func (h *oggPageHeader) bodyLen() int {
	n := 0
	for _, s := range h.SegmentTable {
		n += int(s)
	}
	return n
}

// parseOggPageHeader reads an Ogg page header. The CRC is not checked.
func parseOggPageHeader(r io.Reader) (*oggPageHeader, error) {
	var buf [oggHeaderLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	if string(buf[0:4]) != "OggS" {
		return nil, errInvalidOggMagic
	}
	if buf[4] != 0 {
		return nil, errInvalidOggVersion
	}

	hdr := &oggPageHeader{
		HeaderType:   buf[5],
		GranulePos:   int64(binary.LittleEndian.Uint64(buf[6:14])), //nolint:gosec // -1 is a valid granule
		SerialNumber: binary.LittleEndian.Uint32(buf[14:18]),
		SequenceNum:  binary.LittleEndian.Uint32(buf[18:22]),
	}
	if n := buf[26]; n > 0 {
		hdr.SegmentTable = make([]uint8, n)
		if _, err := io.ReadFull(r, hdr.SegmentTable); err != nil {
			return nil, err
		}
	}
	return hdr, nil
}

// oggPage holds the packets completed on one page of the first logical
// stream. start is the granule at which the page's first packet begins.
type oggPage struct {
	start   int64
	granule int64
	packets [][]byte
}

// readOggPages splits the first logical stream of r into pages, joining
// packets that span page boundaries. Pages of other streams are skipped.
// A truncated final page ends the stream without error.
func readOggPages(r io.Reader) ([]oggPage, error) {
	var (
		pages   []oggPage
		serial  uint32
		partial []byte
		last    int64
	)
	for seq := 0; ; seq++ {
		hdr, err := parseOggPageHeader(r)
		if err != nil {
			if len(pages) > 0 && (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) {
				break
			}
			if errors.Is(err, io.EOF) {
				return nil, errEmptyOgg
			}
			return nil, err
		}
		body := make([]byte, hdr.bodyLen())
		if _, err := io.ReadFull(r, body); err != nil {
			if len(pages) > 0 {
				break
			}
			return nil, errors.Wrap(err, "ogg: read page body")
		}

		if seq == 0 {
			serial = hdr.SerialNumber
		} else if hdr.SerialNumber != serial {
			continue
		}
		if hdr.HeaderType&oggContinued == 0 {
			partial = nil
		}

		page := oggPage{start: last, granule: hdr.GranulePos}
		off := 0
		for _, seg := range hdr.SegmentTable {
			partial = append(partial, body[off:off+int(seg)]...)
			off += int(seg)
			if seg < oggLacingMaxSeg {
				page.packets = append(page.packets, partial)
				partial = nil
			}
		}
		if hdr.GranulePos != noGranule {
			last = hdr.GranulePos
		}
		pages = append(pages, page)
	}
	return pages, nil
}
