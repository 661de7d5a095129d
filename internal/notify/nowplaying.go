package notify

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/llehouerou/albums/internal/playback"
)

const nowPlayingTimeout = 5000 // ms

// NowPlaying announces track changes. Each announcement replaces the
// previous one so at most one is on screen.
type NowPlaying struct {
	notifier Notifier
	lastID   uint32
	lastURL  string
	lastMeta bool
}

// NewNowPlaying creates an announcer sending through n.
func NewNowPlaying(n Notifier) *NowPlaying {
	return &NowPlaying{notifier: n}
}

// Observe sends a notification when the playing track changes, and once
// more when its tags arrive. Paused and stopped states send nothing.
func (p *NowPlaying) Observe(s playback.State) error {
	if s.Track == nil || !s.IsPlaying {
		return nil
	}
	hasMeta := !s.Loading
	if s.Track.URL == p.lastURL && (p.lastMeta || !hasMeta) {
		return nil
	}
	p.lastURL = s.Track.URL
	p.lastMeta = hasMeta

	id, err := p.notifier.Notify(Notification{
		Title:      "Now playing",
		Body:       body(s),
		Icon:       "audio-x-generic",
		Timeout:    nowPlayingTimeout,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}

// Close withdraws the last announcement.
func (p *NowPlaying) Close() error {
	if p.lastID == 0 {
		return nil
	}
	id := p.lastID
	p.lastID = 0
	return p.notifier.Close(id)
}

// body is the title over the artist and album. Servers render the body
// as markup, so names are escaped.
func body(s playback.State) string {
	var info []string
	if s.Meta.Artist != "" {
		info = append(info, s.Meta.Artist)
	}
	if s.Meta.Album != "" {
		info = append(info, s.Meta.Album)
	}
	title := html.EscapeString(s.Title())
	if len(info) == 0 {
		return title
	}
	return title + "\n" + html.EscapeString(strings.Join(info, " · "))
}
