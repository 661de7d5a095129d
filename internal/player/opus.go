package player

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/jj11hh/opus"
)

const (
	opusSampleRate = 48000
	opusMaxFrame   = 5760 // 120 ms at 48 kHz, per channel
	opusPreRoll    = 3840 // 80 ms decoded before a seek target
)

var (
	errInvalidOpusHead = errors.New("opus: invalid OpusHead packet")
	errUnsupportedOpus = errors.New("opus: unsupported stream")
)

// packetDecoder decodes one Opus packet into interleaved float samples and
// returns the samples per channel. *opus.Decoder implements it.
type packetDecoder interface {
	DecodeFloat32(packet []byte, pcm []float32) (int, error)
}

// opusHead is the identification header of an Ogg/Opus stream.
type opusHead struct {
	channels int
	preSkip  int
}

func parseOpusHead(packet []byte) (opusHead, error) {
	if len(packet) < 19 || string(packet[:8]) != "OpusHead" {
		return opusHead{}, errInvalidOpusHead
	}
	// Major version in the high nibble must be 0.
	if packet[8]>>4 != 0 {
		return opusHead{}, errors.Wrapf(errUnsupportedOpus, "version %d", packet[8])
	}
	channels := int(packet[9])
	if channels < 1 || channels > 2 {
		return opusHead{}, errors.Wrapf(errUnsupportedOpus, "%d channels", channels)
	}
	return opusHead{
		channels: channels,
		preSkip:  int(binary.LittleEndian.Uint16(packet[10:12])),
	}, nil
}

// decodeOpus decodes an Ogg/Opus stream held by rc.
func decodeOpus(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	pages, err := readOggPages(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if len(pages[0].packets) == 0 {
		return nil, beep.Format{}, errInvalidOpusHead
	}
	head, err := parseOpusHead(pages[0].packets[0])
	if err != nil {
		return nil, beep.Format{}, err
	}
	dec, err := opus.NewDecoder(opusSampleRate, head.channels)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "opus: create decoder")
	}

	d := newOpusStream(audioPages(pages), head, dec, rc)
	format := beep.Format{
		SampleRate:  opusSampleRate,
		NumChannels: head.channels,
		Precision:   2,
	}
	return d, format, nil
}

// audioPages drops the OpusHead and OpusTags packets, which always end
// their own pages, and returns the pages carrying audio.
func audioPages(pages []oggPage) []oggPage {
	headers := 2
	for i, p := range pages {
		if headers == 0 {
			return pages[i:]
		}
		headers -= min(headers, len(p.packets))
	}
	return nil
}

// opusStream implements beep.StreamSeekCloser over Opus packets.
// Positions are in samples per channel after pre-skip.
type opusStream struct {
	pages    []oggPage
	decoder  packetDecoder
	closer   io.Closer
	channels int
	preSkip  int64
	total    int64

	page   int
	packet int
	pcm    []float32
	pcmPos int
	skip   int64 // decoded samples to drop before output
	pos    int64
	err    error
}

func newOpusStream(pages []oggPage, head opusHead, dec packetDecoder, closer io.Closer) *opusStream {
	d := &opusStream{
		pages:    pages,
		decoder:  dec,
		closer:   closer,
		channels: head.channels,
		preSkip:  int64(head.preSkip),
		skip:     int64(head.preSkip),
		pcm:      make([]float32, opusMaxFrame*head.channels),
	}
	for i := len(pages) - 1; i >= 0; i-- {
		if pages[i].granule != noGranule {
			d.total = max(pages[i].granule-d.preSkip, 0)
			break
		}
	}
	d.pcmPos = len(d.pcm)
	return d
}

func (d *opusStream) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && d.pos < d.total {
		if d.pcmPos >= len(d.pcm) {
			if !d.decodeNext() {
				break
			}
			continue
		}
		samples[n][0] = float64(d.pcm[d.pcmPos])
		if d.channels == 2 {
			samples[n][1] = float64(d.pcm[d.pcmPos+1])
		} else {
			samples[n][1] = samples[n][0]
		}
		d.pcmPos += d.channels
		d.pos++
		n++
	}
	return n, n > 0
}

// decodeNext decodes the next packet into pcm, dropping pending skip
// samples. It returns false at the end of the stream.
func (d *opusStream) decodeNext() bool {
	for d.page < len(d.pages) {
		pg := d.pages[d.page]
		if d.packet >= len(pg.packets) {
			d.page++
			d.packet = 0
			continue
		}
		packet := pg.packets[d.packet]
		d.packet++

		frames, err := d.decoder.DecodeFloat32(packet, d.pcm[:cap(d.pcm)])
		if err != nil {
			// Corrupt packets are skipped; the stream stays playable.
			d.err = errors.Wrap(err, "opus: decode packet")
			continue
		}
		d.pcm = d.pcm[:frames*d.channels]
		drop := min(d.skip, int64(frames))
		d.skip -= drop
		d.pcmPos = int(drop) * d.channels
		if d.pcmPos < len(d.pcm) {
			return true
		}
	}
	return false
}

func (d *opusStream) Err() error { return d.err }

func (d *opusStream) Len() int { return int(d.total) }

func (d *opusStream) Position() int { return int(d.pos) }

// Seek restarts decoding on the page holding the target minus the pre-roll
// and skips up to the target, giving the decoder time to converge.
func (d *opusStream) Seek(p int) error {
	target := min(max(int64(p), 0), d.total)
	granule := target + d.preSkip

	d.page = seekPage(d.pages, max(granule-opusPreRoll, 0))
	d.packet = 0
	d.pcm = d.pcm[:cap(d.pcm)]
	d.pcmPos = len(d.pcm)
	d.skip = granule
	if d.page < len(d.pages) {
		d.skip = granule - d.pages[d.page].start
	}
	d.pos = target
	d.err = nil
	return nil
}

// seekPage returns the last page starting at or before granule.
func seekPage(pages []oggPage, granule int64) int {
	idx := 0
	for i, p := range pages {
		if p.start > granule {
			break
		}
		idx = i
	}
	return idx
}

func (d *opusStream) Close() error {
	return d.closer.Close()
}
