// Package listing reads track and folder lists from an HTTP directory
// listing such as the ones produced by nginx autoindex or python's http.server.
package listing

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/playlist"
)

const (
	userAgent       = "albums-music-player/1.0 (https://github.com/llehouerou/albums)"
	defaultTimeout  = 15 * time.Second
	maxListingBytes = 8 << 20
)

// Config holds the server layout.
type Config struct {
	BaseURL    string
	AlbumsPath string
	Extensions []string
	Timeout    time.Duration
}

// Client fetches listing pages below the albums path of one server.
type Client struct {
	base       *url.URL
	albumsPath string
	extensions []string
	httpClient *http.Client
}

// Result is the outcome of parsing one folder listing.
type Result struct {
	Folder  string
	Tracks  []playlist.Track
	Skipped []*ParseError
}

// Playlist builds the playlist for the result.
func (r *Result) Playlist() *playlist.Playlist {
	return playlist.New(r.Folder, r.Tracks...)
}

// New creates a listing client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("server url is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid server url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Newf("invalid server url %q: scheme and host are required", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	exts := make([]string, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = []string{".mp3"}
	}

	return &Client{
		base:       base,
		albumsPath: normalizeAlbumsPath(cfg.AlbumsPath),
		extensions: exts,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// AlbumsURL returns the URL of the listing that holds the folders.
func (c *Client) AlbumsURL() *url.URL {
	return c.base.ResolveReference(&url.URL{Path: c.albumsPath})
}

// FolderURL returns the URL of a folder listing.
func (c *Client) FolderURL(folder string) *url.URL {
	return c.base.ResolveReference(&url.URL{Path: c.albumsPath + folder + "/"})
}

// Fetch downloads and parses the listing of folder. Anchors from which no
// name can be derived are logged and reported in Result.Skipped.
func (c *Client) Fetch(ctx context.Context, folder string) (*Result, error) {
	pageURL := c.FolderURL(folder)

	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, &FetchError{Folder: folder, URL: pageURL.String(), Err: err}
	}

	res, err := c.Parse(strings.NewReader(body), pageURL, folder)
	if err != nil {
		return nil, &FetchError{Folder: folder, URL: pageURL.String(), Err: err}
	}

	for _, skipped := range res.Skipped {
		zlog.Warn().Str("folder", folder).Str("href", skipped.Href).Msg(skipped.Reason)
	}
	zlog.Debug().
		Str("folder", folder).
		Int("tracks", len(res.Tracks)).
		Int("skipped", len(res.Skipped)).
		Msg("listing fetched")

	return res, nil
}

// Folders lists the folders directly below the albums path.
func (c *Client) Folders(ctx context.Context) ([]string, error) {
	pageURL := c.AlbumsURL()

	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, &FetchError{URL: pageURL.String(), Err: err}
	}

	hrefs, err := anchors(strings.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: pageURL.String(), Err: err}
	}

	var folders []string
	seen := make(map[string]bool)
	for _, href := range hrefs {
		u, err := pageURL.Parse(href)
		if err != nil || u.Host != pageURL.Host {
			continue
		}
		name, ok := strings.CutPrefix(u.Path, c.albumsPath)
		if !ok {
			continue
		}
		name, ok = strings.CutSuffix(name, "/")
		if !ok || name == "" || strings.Contains(name, "/") || seen[name] {
			continue
		}
		seen[name] = true
		folders = append(folders, name)
	}
	return folders, nil
}

// Parse extracts the tracks of folder from a listing page. Hrefs are
// resolved against pageURL; only those whose path ends with one of the
// configured extensions are considered. Duplicate URLs are dropped.
func (c *Client) Parse(r io.Reader, pageURL *url.URL, folder string) (*Result, error) {
	hrefs, err := anchors(r)
	if err != nil {
		return nil, err
	}

	res := &Result{Folder: folder}
	prefix := c.albumsPath + folder + "/"
	seen := make(map[string]bool)

	for _, href := range hrefs {
		u, err := pageURL.Parse(href)
		if err != nil {
			if c.hasExtension(href) {
				res.Skipped = append(res.Skipped, &ParseError{Href: href, Reason: "invalid url"})
			}
			continue
		}
		ext := c.matchExtension(u.Path)
		if ext == "" {
			continue
		}

		trackURL := u.String()
		if seen[trackURL] {
			continue
		}

		name, ok := trackName(u.Path, prefix, ext)
		if !ok {
			res.Skipped = append(res.Skipped, &ParseError{
				Href:   href,
				Reason: "track is not inside " + prefix,
			})
			continue
		}

		seen[trackURL] = true
		res.Tracks = append(res.Tracks, playlist.Track{Name: name, URL: trackURL})
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, u *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "http request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxListingBytes))
	if err != nil {
		return "", errors.Wrap(err, "read body")
	}
	return string(data), nil
}

// matchExtension returns the configured extension p ends with, or "".
func (c *Client) matchExtension(p string) string {
	lower := strings.ToLower(p)
	for _, ext := range c.extensions {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

func (c *Client) hasExtension(href string) bool {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	return c.matchExtension(href) != ""
}

// trackName derives the display name from a decoded path: the part after
// prefix, without the extension.
func trackName(p, prefix, ext string) (string, bool) {
	_, rest, ok := strings.Cut(p, prefix)
	if !ok || len(rest) < len(ext) {
		return "", false
	}
	name := rest[:len(rest)-len(ext)]
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

func normalizeAlbumsPath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}
