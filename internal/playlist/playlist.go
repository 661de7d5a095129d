package playlist

// Track represents a single playable audio item.
// Identity is the URL; the name is what the listing showed for it.
type Track struct {
	Name string // display name (file name without folder or extension)
	URL  string // absolute URL the audio is streamed from
}

// Playlist holds an ordered, read-only collection of tracks.
// Order is the order the tracks were discovered in.
type Playlist struct {
	folder string
	tracks []Track
}

// New creates a playlist for a folder. Tracks sharing a URL with an earlier
// track are dropped, so a URL appears at most once.
func New(folder string, tracks ...Track) *Playlist {
	p := &Playlist{
		folder: folder,
		tracks: make([]Track, 0, len(tracks)),
	}
	seen := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		if seen[t.URL] {
			continue
		}
		seen[t.URL] = true
		p.tracks = append(p.tracks, t)
	}
	return p
}

// Empty returns a playlist with no tracks.
func Empty() *Playlist {
	return New("")
}

// Folder returns the folder the playlist was loaded from.
func (p *Playlist) Folder() string {
	return p.folder
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	t := p.tracks[index]
	return &t
}

// IndexOf returns the index of the track with the given URL, or -1.
func (p *Playlist) IndexOf(url string) int {
	for i, t := range p.tracks {
		if t.URL == url {
			return i
		}
	}
	return -1
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return p.Len() == 0
}
